// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coast

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

func TestNoSeaCells01(tst *testing.T) {

	chk.PrintTitle("NoSeaCells01: a uniform all-sea grid yields no edge points")

	g := grid.New(10, 10, 1, 0, 0, 1) // basement 0 everywhere, water depth 5 everywhere: all sea
	_, err := Trace(g, 5, rand.New(rand.NewSource(1)), false, false)
	if err == nil {
		tst.Fatal("expected FindCoast error for an all-sea grid")
	}
}

func TestWestEastSplit01(tst *testing.T) {

	chk.PrintTitle("WestEastSplit01: west-half-sea/east-half-land grid traces one coastline")

	g := grid.New(10, 10, 1, 0, 0, 1)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := g.Cell(col, row)
			if col < 5 {
				c.Basement = 0 // sea (west half)
			} else {
				c.Basement = 10 // land (east half)
			}
			c.CalcAllLayerElevs()
		}
	}

	results, err := Trace(g, 5, rand.New(rand.NewSource(1)), false, false)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		tst.Fatalf("expected exactly one traced coastline, got %d", len(results))
	}
	if len(results[0].Cells) != 10 {
		tst.Fatalf("coastline cell count = %d, want 10 (one per row)", len(results[0].Cells))
	}
	if results[0].Hand != geom.RightHanded {
		tst.Fatal("expected a right-handed coastline (sea to the right walking north to south)")
	}
	for _, cl := range results[0].Cells {
		if cl.Col != 5 {
			tst.Fatalf("coastline cell at col %d, want 5 (first land column)", cl.Col)
		}
	}
}

func TestEdgeOrderReverse01(tst *testing.T) {

	chk.PrintTitle("EdgeOrderReverse01: reverse flips the fixed N,E,S,W sweep")

	fwd := edgeOrder(nil, false, false)
	rev := edgeOrder(nil, false, true)
	want := [4]Direction{West, South, East, North}
	if rev != want {
		tst.Fatalf("reversed order = %v, want %v", rev, want)
	}
	if fwd == rev {
		tst.Fatal("reverse should change the order")
	}
}
