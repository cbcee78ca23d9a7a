// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

func TestOffGridEndpoint01(tst *testing.T) {

	chk.PrintTitle("OffGridEndpoint01: an endpoint falling off-grid is rejected and marks no cells")

	g := grid.New(10, 10, 1, 0, 0, 1)
	rawCells := []geom.Point2I{{Col: 9, Row: 5}}

	_, err := emitOne(g, rawCells, 0, 90, geom.RightHanded, Options{Length: 1000, CellSide: 1})
	if err == nil {
		tst.Fatal("expected an OffGridEndpoint error")
	}
	if !errs.Is(err, errs.OffGridEndpoint) {
		tst.Fatalf("wrong error kind: %v", err)
	}
}

func TestRasterizeMinCells01(tst *testing.T) {

	chk.PrintTitle("RasterizeMinCells01: too-short profile is rejected with LineToGrid")

	g := grid.New(10, 10, 1, 0, 0, 1)
	_, err := rasterize(g, geom.NewPoint2D(0.5, 0.5), geom.NewPoint2D(1.2, 0.5))
	if err == nil || !errs.Is(err, errs.LineToGrid) {
		tst.Fatalf("expected LineToGrid error, got %v", err)
	}
}

func TestEmitSpacing01(tst *testing.T) {

	chk.PrintTitle("EmitSpacing01: profile count equals floor(coastLen / avgSpacing) with no random term")

	g := grid.New(10, 10, 1, 0, 0, 1) // basement 0, so every cell is wet at eta > 0
	var raw []geom.Point2I
	smoothed := geom.NewPolyline(10)
	for row := 0; row < 10; row++ {
		p := geom.Point2I{Col: 5, Row: row}
		raw = append(raw, p)
		smoothed.Append(g.GridToExternal(p))
	}

	opt := Options{AvgSpacing: 3, Length: 4, RandSpaceFact: 0, CellSide: 1}
	tangent := func(i int) float64 { return 180 } // walking south, sea to the west
	profiles, warnings := Emit(g, smoothed, raw, geom.RightHanded, tangent, opt, nil)

	if len(warnings) != 0 {
		tst.Fatalf("unexpected warnings: %v", warnings)
	}
	if want := int(smoothed.Length() / opt.AvgSpacing); len(profiles) != want {
		tst.Fatalf("profile count = %d, want %d", len(profiles), want)
	}
	for _, p := range profiles {
		if len(p.Cells) < 3 {
			tst.Fatalf("profile at coast index %d has %d cells, want >= 3", p.StartCoastIndex, len(p.Cells))
		}
	}
}

func TestIntersect01(tst *testing.T) {

	chk.PrintTitle("Intersect01: crossing profiles are detected")

	p1 := &Profile{Start: geom.NewPoint2D(0, 0), End: geom.NewPoint2D(10, 10)}
	p2 := &Profile{Start: geom.NewPoint2D(0, 10), End: geom.NewPoint2D(10, 0)}
	_, _, _, found := Intersect([]*Profile{p1, p2})
	if !found {
		tst.Fatal("expected an intersection")
	}
}
