// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erosion

import (
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
	"github.com/ferid60433/coastalme-sub000/profile"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

// Params bundles the per-run scalar coefficients governing shore-platform
// erosion: R, the beach protection factor, and the three erodibility
// fractions.
type Params struct {
	R                     float64
	BeachProtectionFactor float64
	SmoothWindow          int // odd; 1 disables slope smoothing

	FineErodibility, SandErodibility, CoarseErodibility float64
}

// ForcingAt bundles the per-profile wave forcing frozen at profile build
// time: the breaking depth and wave energy at the profile's coast point.
type ForcingAt struct {
	BreakingDepth float64
	WaveEnergy    float64
}

// stampOriginal applies the "first wins" rule: it only stamps a cell's
// potential erosion if nothing has touched it yet this step.
func stampOriginal(c *sediment.Cell, depth float64) {
	if c.InterpWeight != nil {
		return
	}
	w := 1.0
	c.PotentialErosion = depth
	c.InterpWeight = &w
}

// stampBlend applies the inverse-distance-weighted blending rule used by
// inter-profile potential erosion: a cell already touched this step is
// replaced by the weighted average of its previous and new values, and the
// stored weight becomes the new weight.
func stampBlend(c *sediment.Cell, depth, weight float64) {
	if c.InterpWeight == nil {
		w := weight
		c.PotentialErosion = depth
		c.InterpWeight = &w
		return
	}
	wPrev := *c.InterpWeight
	blended := (wPrev*c.PotentialErosion + weight*depth) / (wPrev + weight)
	c.PotentialErosion = blended
	w := weight
	c.InterpWeight = &w
}

// potentialCore computes ΔXY, ΔZ for every along-profile cell i > 0 of
// cells, returning the signed ΔZ per index (index 0 unused) so callers can
// decide how to stamp (original vs blended).
func potentialCore(g *grid.RasterGrid, cells []geom.Point2I, eta float64, f ForcingAt, sf *ShapeFunction, params Params) []float64 {
	n := len(cells)
	dz := make([]float64, n)
	if n < 2 || f.BreakingDepth <= 0 {
		return dz
	}

	zTop := make([]float64, n)
	dist := make([]float64, n)
	pts := make([]geom.Point2D, n)
	for i, cp := range cells {
		zTop[i] = g.Cell(cp.Col, cp.Row).SedimentTopElev()
		pts[i] = g.GridToExternal(cp)
	}
	for i := 1; i < n; i++ {
		dist[i] = dist[i-1] + pts[i-1].Dist(pts[i])
	}

	// rise over run walking landward: elevation falls seawards, so the
	// slope is positive on an eroding platform; endpoints stay zero
	slope := make([]float64, n)
	for i := 1; i < n-1; i++ {
		dd := dist[i+1] - dist[i-1]
		if dd != 0 {
			slope[i] = (zTop[i-1] - zTop[i+1]) / dd
		}
	}
	slope = runningMean1D(slope, params.SmoothWindow)

	maxD := sf.MaxDOverDB()
	for i := 1; i < n; i++ {
		g.Cell(cells[i].Col, cells[i].Row).LocalSlope = slope[i]
		dOverDB := clamp01((eta-zTop[i])/f.BreakingDepth, 0, maxD)
		eps := sf.Eval(dOverDB)
		dxy := f.WaveEnergy * params.BeachProtectionFactor * eps * slope[i] / params.R
		if dxy > 0 {
			dxy = 0
		}
		dz[i] = dxy * slope[i]
	}
	return dz
}

func clamp01(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// runningMean1D smooths xs by a running mean of window w (odd); w <= 1 is a
// no-op. Endpoints outside a full window keep their original value.
func runningMean1D(xs []float64, w int) []float64 {
	if w <= 1 || len(xs) == 0 {
		return xs
	}
	half := w / 2
	out := make([]float64, len(xs))
	copy(out, xs)
	for i := half; i < len(xs)-half; i++ {
		var sum float64
		for k := -half; k <= half; k++ {
			sum += xs[i+k]
		}
		out[i] = sum / float64(w)
	}
	return out
}

// PotentialOnProfile computes and stamps potential erosion for every
// along-profile cell landward of a profile's seaward end. Cells carrying a
// hard intervention (a sea wall) are skipped.
func PotentialOnProfile(g *grid.RasterGrid, prof *profile.Profile, eta float64, f ForcingAt, sf *ShapeFunction, params Params) {
	dz := potentialCore(g, prof.Cells, eta, f, sf, params)
	for i := 1; i < len(prof.Cells); i++ {
		if dz[i] >= 0 {
			continue
		}
		c := g.Cell(prof.Cells[i].Col, prof.Cells[i].Row)
		if c.Intervention != sediment.InterventionNone {
			continue
		}
		stampOriginal(c, -dz[i])
	}
}

// InterProfilePotential steps outward from prof in both along-coast
// directions, generating a parallel profile one coast-cell further each
// time via profile.Translate, repeating the potential-erosion computation
// and blending into whatever a cell already holds. rawCoast is
// the coast's raw cell trace; wet reports whether a cell is wet, and a
// parallel profile ends at its first dry cell beyond the coast cell;
// otherProfileOrigins is the set of coast cells
// already claimed by another profile on this coast.
func InterProfilePotential(g *grid.RasterGrid, prof *profile.Profile, rawCoast []geom.Point2I, eta float64, f ForcingAt, sf *ShapeFunction, params Params, wet func(geom.Point2I) bool, otherProfileOrigins map[geom.Point2I]bool) {
	for _, dir := range []int{1, -1} {
		walkDirection(g, prof, rawCoast, dir, eta, f, sf, params, wet, otherProfileOrigins)
	}
}

func walkDirection(g *grid.RasterGrid, prof *profile.Profile, rawCoast []geom.Point2I, dir int, eta float64, f ForcingAt, sf *ShapeFunction, params Params, wet func(geom.Point2I) bool, otherOrigins map[geom.Point2I]bool) {
	n := len(rawCoast)
	fromCoastCell := rawCoast[prof.StartCoastIndex]
	cells := prof.Cells
	prevCoastCell := fromCoastCell

	for step := 1; ; step++ {
		idx := prof.StartCoastIndex + dir*step
		if idx < 0 || idx >= n {
			return // reached a coast end
		}
		toCoastCell := rawCoast[idx]
		if toCoastCell == prevCoastCell {
			return // rounding collapsed to the same cell
		}
		if otherOrigins[toCoastCell] {
			return // hit another profile's origin cell
		}

		translated := profile.Translate(g, cells, fromCoastCell, toCoastCell, wet)
		if len(translated) < 3 {
			return
		}

		dz := potentialCore(g, translated, eta, f, sf, params)
		weight := 1.0 / float64(step)
		for i := 1; i < len(translated); i++ {
			if dz[i] >= 0 {
				continue
			}
			c := g.Cell(translated[i].Col, translated[i].Row)
			if c.Intervention != sediment.InterventionNone {
				continue
			}
			stampBlend(c, -dz[i], weight)
		}

		prevCoastCell = toCoastCell
	}
}
