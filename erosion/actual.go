// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package erosion

import "github.com/ferid60433/coastalme-sub000/sediment"

// Removed is the per-fraction depth actually removed from a cell's topmost
// layer by one call to Actual.
type Removed struct {
	Fine, Sand, Coarse float64
}

// Total returns the sum of the three fractions.
func (r Removed) Total() float64 { return r.Fine + r.Sand + r.Coarse }

// Actual partitions a cell's stamped potential erosion across the fine,
// sand, and coarse fractions of its topmost layer in proportion to
// (fractionPresent? 1:0) * erodibilityFraction, subtracts the partitioned
// depths (clamped to what is available, unconsolidated before
// consolidated), records the actual erosion, and recomputes layer
// elevations. A cell with zero potential erosion, or whose
// topmost layer has nothing erodible, is left untouched.
func Actual(c *sediment.Cell, params Params) Removed {
	var out Removed
	if c.PotentialErosion <= 0 || c.Intervention != sediment.InterventionNone || len(c.Layers) == 0 {
		return out
	}

	layer := &c.Layers[0]
	erod := [3]float64{params.FineErodibility, params.SandErodibility, params.CoarseErodibility}

	var present, weight [3]float64
	var weightSum, availTotal float64
	for f := sediment.Fine; f <= sediment.Coarse; f++ {
		present[f] = layer.Unconsolidated.Present(f) + layer.Consolidated.Present(f)
		if present[f] > 0 {
			weight[f] = erod[f]
		}
		weightSum += weight[f]
		availTotal += present[f]
	}
	if weightSum <= 0 || availTotal <= 0 {
		return out
	}

	depth := c.PotentialErosion
	if depth > availTotal {
		depth = availTotal
	}

	removed := [3]float64{}
	for f := sediment.Fine; f <= sediment.Coarse; f++ {
		if weight[f] <= 0 {
			continue
		}
		share := depth * weight[f] / weightSum
		if share > present[f] {
			share = present[f]
		}
		removed[f] = removeFraction(layer, f, share)
	}

	out = Removed{Fine: removed[sediment.Fine], Sand: removed[sediment.Sand], Coarse: removed[sediment.Coarse]}
	actual := out.Total()

	c.ActualErosion = actual
	c.TotActualErosion += actual
	c.CalcAllLayerElevs()
	return out
}

// removeFraction subtracts amount from fraction f of layer, taking from the
// unconsolidated stratum first and the consolidated stratum for any
// remainder, clamped to what each stratum actually holds.
func removeFraction(layer *sediment.CellLayer, f sediment.Fraction, amount float64) float64 {
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
