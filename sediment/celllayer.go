// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sediment

// CellLayer is one stratum of a cell's sediment stack: a pair of
// SedimentLayer (unconsolidated, consolidated) plus three scalars.
type CellLayer struct {
	Unconsolidated SedimentLayer
	Consolidated   SedimentLayer

	VolSedFraction      float64 // volumetric sediment fraction
	MechResistance      float64 // mechanical resistance
	ConsolidationStatus float64 // consolidation status
}

// UnconsolidatedThickness returns the sum of the three unconsolidated
// present depths.
func (c *CellLayer) UnconsolidatedThickness() float64 {
	return c.Unconsolidated.TotalPresent()
}

// ConsolidatedThickness returns the sum of the three consolidated present
// depths.
func (c *CellLayer) ConsolidatedThickness() float64 {
	return c.Consolidated.TotalPresent()
}

// TotalThickness returns the sum of all six present depths.
func (c *CellLayer) TotalThickness() float64 {
	return c.Unconsolidated.TotalPresent() + c.Consolidated.TotalPresent()
}

// NotchUnconsolidatedLost returns the sum of unconsolidated notch-lost depths.
func (c *CellLayer) NotchUnconsolidatedLost() float64 {
	return c.Unconsolidated.TotalNotchLost()
}

// NotchConsolidatedLost returns the sum of consolidated notch-lost depths.
func (c *CellLayer) NotchConsolidatedLost() float64 {
	return c.Consolidated.TotalNotchLost()
}

// RemoveCliff applies SedimentLayer.RemoveCliff to both strata.
func (c *CellLayer) RemoveCliff() {
	c.Unconsolidated.RemoveCliff()
	c.Consolidated.RemoveCliff()
}
