// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coast implements the coastline tracer (component E): edge-point
// discovery, wall-follower maze tracing, coastline smoothing dispatch,
// curvature, and flux orientation, plus the Coast type that owns a traced
// coastline's per-point attributes and the Profile list built on it.
package coast

import (
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/profile"
)

// SmoothKind selects the coastline smoothing filter (config key coastSmooth).
type SmoothKind int

const (
	SmoothNone SmoothKind = iota
	SmoothRunningMean
	SmoothSavitzkyGolay
)

// Coast is an ordered polyline of coastline points in the external CRS, a
// parallel sequence of grid-CRS cell positions, and per-point attribute
// arrays of equal length.
type Coast struct {
	Smoothed *geom.Polyline  // smoothed external-CRS polyline
	Raw      []geom.Point2I  // raw grid cell trace, same length as Smoothed
	Hand     geom.Handedness // which side the sea lies on, start->end

	Curvature        []float64
	FluxOrientation  []float64
	WaveEnergy       []float64
	BreakingHeight   []float64
	BreakingAngle    []float64
	DepthOfBreaking  []float64
	BreakingDistance []float64
	LandformRef      []int // index into an external per-coast-point landform store

	Profiles []*profile.Profile
}

// Len returns the number of coastline points.
func (c *Coast) Len() int {
	if c.Smoothed == nil {
		return 0
	}
	return c.Smoothed.Len()
}

// newAttrArrays allocates the per-point attribute arrays for n points.
func newAttrArrays(n int) Coast {
	return Coast{
		Curvature:        make([]float64, n),
		FluxOrientation:  make([]float64, n),
		WaveEnergy:       make([]float64, n),
		BreakingHeight:   make([]float64, n),
		BreakingAngle:    make([]float64, n),
		DepthOfBreaking:  make([]float64, n),
		BreakingDistance: make([]float64, n),
		LandformRef:      make([]int, n),
	}
}
