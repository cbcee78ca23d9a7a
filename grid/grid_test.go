// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/geom"
)

func TestCRSRoundTrip01(tst *testing.T) {

	chk.PrintTitle("CRSRoundTrip01: grid->external->grid is identity")

	g := New(10, 10, 2.0, 100, 200, 1)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			p := geom.NewPoint2I(col, row)
			ext := g.GridToExternal(p)
			back := g.ExternalToGrid(ext)
			if back.Col != col || back.Row != row {
				tst.Fatalf("round-trip failed at (%d,%d) -> (%d,%d)", col, row, back.Col, back.Row)
			}
		}
	}
}

func TestClamp01(tst *testing.T) {

	chk.PrintTitle("Clamp01: out-of-range positions are clamped into the grid")

	g := New(5, 5, 1, 0, 0, 1)
	c := g.ClampToGrid(geom.NewPoint2I(-3, 99))
	if c.Col != 0 || c.Row != 4 {
		tst.Fatalf("got (%d,%d), want (0,4)", c.Col, c.Row)
	}
}

func TestResetPreservesPersistent01(tst *testing.T) {

	chk.PrintTitle("ResetPreservesPersistent01: reset wipes transients, keeps basement/layers")

	g := New(2, 2, 1, 0, 0, 1)
	c := g.Cell(0, 0)
	c.Basement = 7
	c.WaveHeight = 3
	c.IsCoastline = true

	g.Reset()

	chk.Float64(tst, "basement preserved", 1e-12, c.Basement, 7)
	if c.WaveHeight != 0 || c.IsCoastline {
		tst.Fatal("transient fields were not reset")
	}
}
