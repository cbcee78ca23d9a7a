// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coast

import (
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

// SmoothOptions configures coastline smoothing and curvature estimation.
type SmoothOptions struct {
	Kind         SmoothKind
	RunningMeanW int
	SavGolW      int
	SavGolOrder  int
	CurvInterval int // sampling interval for the curvature estimator, in points
}

// Build converts a raw TraceResult into a Coast: external-CRS polyline
// (optionally smoothed), raw cell sequence, handedness, and the derived
// curvature/flux-orientation attribute arrays.
func Build(g *grid.RasterGrid, tr TraceResult, opt SmoothOptions) *Coast {
	n := len(tr.Cells)
	raw := geom.NewPolyline(n)
	for _, p := range tr.Cells {
		raw.Append(g.GridToExternal(p))
	}

	var smoothed *geom.Polyline
	switch opt.Kind {
	case SmoothRunningMean:
		smoothed = geom.RunningMeanSmooth(raw, opt.RunningMeanW)
	case SmoothSavitzkyGolay:
		coeffs := geom.SavitzkyGolayCoeffs(opt.SavGolW, opt.SavGolOrder)
		smoothed = geom.SavitzkyGolaySmooth(raw, coeffs)
	default:
		smoothed = raw.Clone()
	}

	c := newAttrArrays(n)
	c.Smoothed = smoothed
	c.Raw = tr.Cells
	c.Hand = tr.Hand

	interval := opt.CurvInterval
	if interval < 1 {
		interval = 1
	}
	c.Curvature = Curvature(smoothed, interval)
	c.FluxOrientation = FluxOrientation(smoothed)

	return &c
}
