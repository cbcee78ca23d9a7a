// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erosion

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

func TestShapeFunction01(tst *testing.T) {

	chk.PrintTitle("ShapeFunction01: monotone-to-zero shape function lookups")

	sf, err := NewShapeFunction([]ControlPoint{
		{DOverDB: 0, Eps: -1, DEps: 1},
		{DOverDB: 1, Eps: 0, DEps: 1},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	for _, d := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		got := sf.Eval(d)
		want := -1 + d
		if math.Abs(got-want) > 1e-2 {
			tst.Fatalf("Eval(%g) = %g, want approx %g", d, got, want)
		}
	}
	if got := sf.Eval(1.5); got != 0 {
		tst.Fatalf("Eval beyond maxDOverDB = %g, want 0", got)
	}
}

func TestShapeFunctionNeverPositive01(tst *testing.T) {

	chk.PrintTitle("ShapeFunctionNeverPositive01: a function that never crosses to positive fails initialization")

	_, err := NewShapeFunction([]ControlPoint{
		{DOverDB: 0, Eps: -1, DEps: 0},
		{DOverDB: 1, Eps: -0.5, DEps: 0},
	})
	if err == nil || !errs.Is(err, errs.ShapeFunctionFile) {
		tst.Fatalf("expected ShapeFunctionFile error, got %v", err)
	}
}

func TestActualErosionPartition01(tst *testing.T) {

	chk.PrintTitle("ActualErosionPartition01: potential erosion partitions across erodible fractions")

	c := sediment.NewCell(0, 2)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Fine, 0.1)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Sand, 0.1)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Coarse, 0)
	c.CalcAllLayerElevs()
	c.PotentialErosion = 0.1

	params := Params{FineErodibility: 1, SandErodibility: 1, CoarseErodibility: 1}
	removed := Actual(c, params)

	if removed.Coarse != 0 {
		tst.Fatalf("coarse removed = %g, want 0 (absent fraction has zero weight)", removed.Coarse)
	}
	if math.Abs(removed.Fine-0.05) > 1e-9 || math.Abs(removed.Sand-0.05) > 1e-9 {
		tst.Fatalf("expected an even 0.05/0.05 split, got fine=%g sand=%g", removed.Fine, removed.Sand)
	}
	if math.Abs(c.ActualErosion-0.1) > 1e-9 {
		tst.Fatalf("ActualErosion = %g, want 0.1", c.ActualErosion)
	}
}

func TestActualErosionClampsToAvailable01(tst *testing.T) {

	chk.PrintTitle("ActualErosionClampsToAvailable01: erosion cannot exceed what the top layer holds")

	c := sediment.NewCell(0, 1)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Sand, 0.02)
	c.CalcAllLayerElevs()
	c.PotentialErosion = 1.0

	removed := Actual(c, Params{FineErodibility: 1, SandErodibility: 1, CoarseErodibility: 1})
	if removed.Total() > 0.02+1e-9 {
		tst.Fatalf("removed %g exceeds available 0.02", removed.Total())
	}
	if c.Layers[0].Unconsolidated.Present(sediment.Sand) < -1e-9 {
		tst.Fatalf("sand present went negative: %g", c.Layers[0].Unconsolidated.Present(sediment.Sand))
	}
}
