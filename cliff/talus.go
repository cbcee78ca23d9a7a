// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"math"

	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

// DeanParams configures the Dean-equilibrium talus geometry (the
// cliffDeposition* config keys).
type DeanParams struct {
	DA             float64 // user-specified dA, 0 selects auto
	PlanviewWidth  int     // W_p, odd
	PlanviewLength float64 // L_p, metres
	HeightFrac     float64 // talus top as a fraction of cliff height above the cliff base
}

// talusMaxSeawardOffset bounds the seaward extension search when a profile's
// base length cannot accommodate its share of the collapse volume.
const talusMaxSeawardOffset = 20

// FractionRatio is the pre-collapse sand:coarse volume ratio used to split
// deposited talus material.
type FractionRatio struct{ Sand, Coarse float64 }

// Deposited is the outcome of redistributing one collapsed cell's sand and
// coarse volume across its W_p planview profiles.
type Deposited struct {
	Delivered float64 // total sand+coarse actually placed
	SedLost   float64 // volume exported off-grid or left undeliverable
	ErodedFine, ErodedSand, ErodedCoarse float64
}

// Redistribute spreads volumeSandCoarse across params.PlanviewWidth profiles
// fanning out from the collapse point.
// origin is the collapsed coast point in the external CRS; tangent is the
// local coast tangent azimuth; hand picks which side is seaward; talusTopElev
// anchors the Dean equilibrium profile (cliff base plus HeightFrac of the
// cliff height, per the caller).
func Redistribute(g *grid.RasterGrid, origin geom.Point2D, tangent float64, hand geom.Handedness, talusTopElev float64, volumeSandCoarse float64, ratio FractionRatio, erod [3]float64, params DeanParams) Deposited {
	wp := params.PlanviewWidth
	if wp < 1 {
		wp = 1
	}
	half := (wp - 1) / 2

	shares := make([]float64, wp)
	for i := range shares {
		shares[i] = volumeSandCoarse / float64(wp)
	}

	var out Deposited
	for j := 0; j < wp; j++ {
		k := j - half
		vk := shares[j]
		if vk <= 0 {
			continue
		}
		delivered, eroded, ok := talusOneProfile(g, origin, tangent, hand, talusTopElev, float64(k)*g.Side, vk, ratio, erod, params)
		if !ok {
			remaining := wp - j - 1
			out.SedLost += vk
			if remaining > 0 {
				add := vk / float64(remaining)
				for r := j + 1; r < wp; r++ {
					shares[r] += add
				}
			}
			continue
		}
		out.Delivered += delivered
		out.ErodedFine += eroded.Fine
		out.ErodedSand += eroded.Sand
		out.ErodedCoarse += eroded.Coarse
	}
	return out
}

// talusOneProfile builds one planview profile, offset laterally by
// lateralOffset metres along the coast tangent, and walks it outward with an
// increasing seaward offset until the Dean equilibrium profile yields enough
// deposition capacity for vk. The profile whose start or end falls off-grid,
// or which never finds capacity within talusMaxSeawardOffset, fails so the
// caller can redistribute its share.
func talusOneProfile(g *grid.RasterGrid, origin geom.Point2D, tangent float64, hand geom.Handedness, talusTopElev, lateralOffset, vk float64, ratio FractionRatio, erod [3]float64, params DeanParams) (delivered float64, eroded Removed, ok bool) {
	sinT, cosT := math.Sin(tangent*math.Pi/180), math.Cos(tangent*math.Pi/180)
	start := geom.Point2D{X: origin.X + lateralOffset*sinT, Y: origin.Y + lateralOffset*cosT}
	if !g.IsWithinGrid(g.ExternalToGrid(start)) {
		return 0, eroded, false
	}
	tangentDirPoint := geom.Point2D{X: start.X + sinT, Y: start.Y + cosT}

	for offset := 0; offset <= talusMaxSeawardOffset; offset++ {
		length := params.PlanviewLength + float64(offset)*g.Side
		end := geom.Perpendicular(start, tangentDirPoint, length, hand)
		if !g.IsWithinGrid(g.ExternalToGrid(end)) {
			return 0, eroded, false
		}

		cells := ddaWalk(g, start, end)
		if len(cells) < 2 {
			continue
		}

		zNow := make([]float64, len(cells))
		dist := make([]float64, len(cells))
		for i, cp := range cells {
			zNow[i] = g.Cell(cp.Col, cp.Row).SedimentTopElev()
			if i > 0 {
				dist[i] = dist[i-1] + g.GridToExternal(cells[i-1]).Dist(g.GridToExternal(cp))
			}
		}

		dA := params.DA
		if dA == 0 {
			// solve for dA so the equilibrium elevation at the seaward end
			// matches the actual elevation there
			yEnd := dist[len(dist)-1]
			if yEnd > 0 {
				dA = (talusTopElev - zNow[len(zNow)-1]) / math.Pow(yEnd, 2.0/3.0)
			} else {
				dA = 0.1
			}
		}

		diff := make([]float64, len(cells))
		var capacity float64
		for i := range cells {
			hEq := talusTopElev - dA*math.Pow(dist[i], 2.0/3.0)
			diff[i] = hEq - zNow[i]
			if diff[i] > 0 {
				capacity += diff[i]
			}
		}
		if capacity < vk {
			continue // not enough room under the equilibrium; extend seawards
		}

		scale := vk / capacity
		ratioSum := ratio.Sand + ratio.Coarse
		if ratioSum <= 0 {
			ratioSum = 1
		}

		for i := range cells {
			c := g.Cell(cells[i].Col, cells[i].Row)
			if diff[i] > 0 {
				depositDepth := diff[i] * scale
				sandDepth := depositDepth * ratio.Sand / ratioSum
				coarseDepth := depositDepth * ratio.Coarse / ratioSum
				c.Layers[0].Unconsolidated.AddPresent(sediment.Sand, sandDepth)
				c.Layers[0].Unconsolidated.AddPresent(sediment.Coarse, coarseDepth)
				c.CalcAllLayerElevs()
				delivered += sandDepth + coarseDepth
			} else if diff[i] < 0 {
				r := removeProportional(&c.Layers[0], -diff[i], erod)
				eroded.Fine += r.Fine
				eroded.Sand += r.Sand
				eroded.Coarse += r.Coarse
				c.CalcAllLayerElevs()
			}
		}
		return delivered, eroded, true
	}
	return 0, eroded, false
}

// removeProportional removes amount from layer's topmost-layer fractions in
// proportion to each fraction's availability-weighted erodibility, the same
// partitioning rule package erosion applies to actual erosion.
func removeProportional(layer *sediment.CellLayer, amount float64, erod [3]float64) Removed {
	var out Removed
	if amount <= 0 {
		return out
	}
	var present, weight [3]float64
	var weightSum float64
	for f := sediment.Fine; f <= sediment.Coarse; f++ {
		present[f] = layer.Unconsolidated.Present(f) + layer.Consolidated.Present(f)
		if present[f] > 0 {
			weight[f] = erod[f]
		}
		weightSum += weight[f]
	}
	if weightSum <= 0 {
		return out
	}
	for f := sediment.Fine; f <= sediment.Coarse; f++ {
		if weight[f] <= 0 {
			continue
		}
		share := amount * weight[f] / weightSum
		if share > present[f] {
			share = present[f]
		}
		removed := removeFromStrata(layer, f, share)
		switch f {
		case sediment.Fine:
			out.Fine = removed
		case sediment.Sand:
			out.Sand = removed
		case sediment.Coarse:
			out.Coarse = removed
		}
	}
	return out
}

func removeFromStrata(layer *sediment.CellLayer, f sediment.Fraction, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	var removed float64
	avail := layer.Unconsolidated.Present(f)
	take := amount
	if take > avail {
		take = avail
	}
	if take > 0 {
		layer.Unconsolidated.AddPresent(f, -take)
		removed += take
		amount -= take
	}
	if amount > 0 {
		avail = layer.Consolidated.Present(f)
		take = amount
		if take > avail {
			take = avail
		}
		if take > 0 {
			layer.Consolidated.AddPresent(f, -take)
			removed += take
		}
	}
	return removed
}

// ddaWalk rasterizes the straight line from p0 to p1 into an ordered,
// deduplicated sequence of grid cells, grounded on package profile's
// rasterize (component F), duplicated here since a planview talus profile
// has no coastline-length-floor or off-grid-rejection behavior to share.
func ddaWalk(g *grid.RasterGrid, p0, p1 geom.Point2D) []geom.Point2I {
	a := g.ExternalToGrid(p0)
	b := g.ExternalToGrid(p1)

	dc := b.Col - a.Col
	dr := b.Row - a.Row
	steps := dc
	if dr > steps {
		steps = dr
	}
	if -dc > steps {
		steps = -dc
	}
	if -dr > steps {
		steps = -dr
	}
	if steps == 0 {
		steps = 1
	}

	var cells []geom.Point2I
	seen := map[geom.Point2I]bool{}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		p := geom.Point2I{
			Col: a.Col + int(math.Round(float64(dc)*t)),
			Row: a.Row + int(math.Round(float64(dr)*t)),
		}
		if !g.IsWithinGrid(p) {
			break
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		cells = append(cells, p)
	}
	return cells
}
