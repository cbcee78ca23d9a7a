// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import "github.com/ferid60433/coastalme-sub000/sediment"

// ProfileBreak pairs a profile's along-coast index with its breaking result.
type ProfileBreak struct {
	CoastPointIndex int
	Breaking        Breaking
}

// CoastValue is the per-coast-point wave attribute bundle produced by
// InterpolateCoastline.
type CoastValue struct {
	BreakingHeight   float64
	BreakingAngle    float64
	DepthOfBreaking  float64
	BreakingDistance float64 // cells, may be fractional before rounding
}

// InterpolateCoastline fills breaking height/angle/depth/distance for every
// coast point between consecutive profiles by linear interpolation weighted
// by along-coast index distance. Coast points before the first
// profile or after the last inherit that profile's values unchanged.
func InterpolateCoastline(coastLen int, profiles []ProfileBreak) []CoastValue {
	out := make([]CoastValue, coastLen)
	if len(profiles) == 0 {
		return out
	}
	// before the first profile
	first := profiles[0]
	fv := CoastValue{
		BreakingHeight:   first.Breaking.Height,
		BreakingAngle:    first.Breaking.Angle,
		DepthOfBreaking:  first.Breaking.Depth,
		BreakingDistance: float64(first.Breaking.DistanceInCells),
	}
	for i := 0; i <= first.CoastPointIndex && i < coastLen; i++ {
		out[i] = fv
	}
	// between consecutive profiles
	for p := 0; p < len(profiles)-1; p++ {
		a, b := profiles[p], profiles[p+1]
		span := b.CoastPointIndex - a.CoastPointIndex
		if span <= 0 {
			continue
		}
		for i := a.CoastPointIndex; i <= b.CoastPointIndex && i < coastLen; i++ {
			wB := float64(i-a.CoastPointIndex) / float64(span)
			wA := 1 - wB
			out[i] = CoastValue{
				BreakingHeight:   wA*a.Breaking.Height + wB*b.Breaking.Height,
				BreakingAngle:    wA*a.Breaking.Angle + wB*b.Breaking.Angle,
				DepthOfBreaking:  wA*a.Breaking.Depth + wB*b.Breaking.Depth,
				BreakingDistance: wA*float64(a.Breaking.DistanceInCells) + wB*float64(b.Breaking.DistanceInCells),
			}
		}
	}
	// after the last profile
	last := profiles[len(profiles)-1]
	lv := CoastValue{
		BreakingHeight:   last.Breaking.Height,
		BreakingAngle:    last.Breaking.Angle,
		DepthOfBreaking:  last.Breaking.Depth,
		BreakingDistance: float64(last.Breaking.DistanceInCells),
	}
	for i := last.CoastPointIndex; i < coastLen; i++ {
		out[i] = lv
	}
	return out
}

// BlendCellValue folds a newly-computed (height, orientation) pair into a
// cell that may already carry a value from a previous virtual profile or
// sweep direction, keeping an exact running mean over every sample the cell
// has received this step (the sample count lives in WaveBlendCount, reset
// with the other transients). An exact mean makes a repeated forward and
// backward sweep reproduce the two-sweep result: the mean of {f, b, f, b}
// equals the mean of {f, b}.
func BlendCellValue(cell *sediment.Cell, height, orientation float64) {
	n := float64(cell.WaveBlendCount)
	cell.WaveHeight = (n*cell.WaveHeight + height) / (n + 1)
	cell.WaveOrientation = (n*cell.WaveOrientation + orientation) / (n + 1)
	cell.WaveBlendCount++
}
