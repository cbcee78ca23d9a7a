// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/sediment"
)

func TestAiryConstants01(tst *testing.T) {

	chk.PrintTitle("AiryConstants01: deep-water celerity and wavelength")

	c0, l0 := AiryConstants(8)
	chk.Float64(tst, "c0", 1e-6, c0, 9.81*8/(2*3.14159265358979))
	chk.Float64(tst, "l0", 1e-6, l0, c0*8)
}

func TestBreakingNonNegative01(tst *testing.T) {

	chk.PrintTitle("BreakingNonNegative01: wave height never negative, active zone implies positive height+depth")

	pts := make([]ProfilePoint, 6)
	for i := range pts {
		pts[i] = ProfilePoint{Cell: sediment.NewCell(0, 1), WaterDepth: float64(6 - i)}
	}
	dw := DeepWater{H0: 1.5, T: 8, Theta0: 80}
	alpha0 := ResolveAlpha0(180, 180, 180, 80, false, false)
	Propagate(pts, dw, 180, alpha0)

	for _, p := range pts {
		if p.Cell.WaveHeight < 0 {
			tst.Fatalf("negative wave height %g", p.Cell.WaveHeight)
		}
		if p.Cell.InActiveZone && p.Cell.WaveHeight <= 0 {
			tst.Fatal("active zone with non-positive height")
		}
	}
}

func TestInterpolateCoastlineBrackets01(tst *testing.T) {

	chk.PrintTitle("InterpolateCoastlineBrackets01: interior linear, exterior constant")

	profiles := []ProfileBreak{
		{CoastPointIndex: 2, Breaking: Breaking{Height: 1, Angle: 10, Depth: 2, DistanceInCells: 3}},
		{CoastPointIndex: 6, Breaking: Breaking{Height: 2, Angle: 20, Depth: 3, DistanceInCells: 4}},
	}
	vals := InterpolateCoastline(9, profiles)

	chk.Float64(tst, "before-first inherits", 1e-9, vals[0].BreakingHeight, 1)
	chk.Float64(tst, "after-last inherits", 1e-9, vals[8].BreakingHeight, 2)
	chk.Float64(tst, "midpoint interpolated", 1e-9, vals[4].BreakingHeight, 1.5)
}

func TestBlendIdempotent01(tst *testing.T) {

	chk.PrintTitle("BlendIdempotent01: repeated blending of the same value converges immediately")

	c := sediment.NewCell(0, 1)
	BlendCellValue(c, 1.0, 45.0)
	BlendCellValue(c, 1.0, 45.0)
	h1, o1 := c.WaveHeight, c.WaveOrientation
	BlendCellValue(c, 1.0, 45.0)
	BlendCellValue(c, 1.0, 45.0)
	chk.Float64(tst, "height stable after extra passes", 1e-12, c.WaveHeight, h1)
	chk.Float64(tst, "orientation stable after extra passes", 1e-12, c.WaveOrientation, o1)
}

func TestBlendTwoPassIdempotent01(tst *testing.T) {

	chk.PrintTitle("BlendTwoPassIdempotent01: repeating a forward+backward blend is a no-op")

	c := sediment.NewCell(0, 1)
	BlendCellValue(c, 1.0, 10.0) // forward pass
	BlendCellValue(c, 2.0, 30.0) // backward pass
	h2, o2 := c.WaveHeight, c.WaveOrientation
	BlendCellValue(c, 1.0, 10.0) // third pass
	BlendCellValue(c, 2.0, 30.0) // fourth pass
	chk.Float64(tst, "height after fourth pass", 1e-12, c.WaveHeight, h2)
	chk.Float64(tst, "orientation after fourth pass", 1e-12, c.WaveOrientation, o2)
}
