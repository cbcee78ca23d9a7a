// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sediment

import "github.com/cpmech/gosl/chk"

// Intervention is the hard-structure code on a cell (e.g. a sea wall).
// A non-zero value shields the cell from erosion.
type Intervention int

const (
	InterventionNone Intervention = iota
	InterventionHard
)

// Transient holds the per-step scratch fields reset in a single linear
// sweep at the top of each step.
type Transient struct {
	WaveOrientation  float64 // degrees
	WaveHeight       float64 // m
	InActiveZone     bool
	LocalSlope       float64
	PotentialErosion float64 // m, >= 0
	ActualErosion    float64 // m, >= 0
	// InterpWeight is nil until a potential-erosion value has been written
	// this step; an explicit optional instead of a -999 sentinel.
	InterpWeight *float64

	// WaveBlendCount is the number of inter-profile wave samples folded
	// into WaveHeight/WaveOrientation this step (running-mean blending).
	WaveBlendCount int

	IsCoastline     bool
	IsNormalProfile bool

	CollapsedDepth        float64
	CollapsedDepositDepth float64
}

// Totals holds the running per-cell accumulators carried across steps.
type Totals struct {
	TotPotentialErosion      float64
	TotActualErosion         float64
	TotCollapsedDepth        float64
	TotCollapsedDepositDepth float64
}

// Cell is one grid cell: fixed basement elevation, an ordered sediment
// layer stack, a landform tag, intervention code, suspended sediment depth,
// per-step transient fields, and running totals.
type Cell struct {
	Basement float64 // fixed for the run

	Layers []CellLayer // top-to-bottom, length fixed at L for the run

	Landform     Landform
	Intervention Intervention

	SuspendedSediment float64 // m, depth equivalent

	Transient
	Totals

	// layerTopElev[i] is the elevation at the top of Layers[i];
	// layerTopElev[len(Layers)] == Basement (the stack's base).
	layerTopElev []float64
}

// NewCell allocates a cell with nLayers empty layers sitting on the given
// basement elevation.
func NewCell(basement float64, nLayers int) *Cell {
	c := &Cell{
		Basement:     basement,
		Layers:       make([]CellLayer, nLayers),
		Landform:     Landform{Category: LandformNone},
		layerTopElev: make([]float64, nLayers+1),
	}
	c.CalcAllLayerElevs()
	return c
}

// CalcAllLayerElevs recomputes the top elevation of every layer from the
// basement upward. Must be called after any layer thickness change.
func (c *Cell) CalcAllLayerElevs() {
	n := len(c.Layers)
	if len(c.layerTopElev) != n+1 {
		c.layerTopElev = make([]float64, n+1)
	}
	c.layerTopElev[n] = c.Basement
	elev := c.Basement
	for i := n - 1; i >= 0; i-- {
		elev += c.Layers[i].TotalThickness()
		c.layerTopElev[i] = elev
	}
}

// LayerTopElev returns the elevation at the top of layer i (0 = topmost).
func (c *Cell) LayerTopElev(i int) float64 { return c.layerTopElev[i] }

// LayerBaseElev returns the elevation at the base of layer i.
func (c *Cell) LayerBaseElev(i int) float64 { return c.layerTopElev[i+1] }

// SedimentTopElev returns basement + sum of all layer thicknesses.
func (c *Cell) SedimentTopElev() float64 {
	if len(c.layerTopElev) == 0 {
		return c.Basement
	}
	return c.layerTopElev[0]
}

// WaterDepth returns max(0, stillWaterLevel - sedimentTopElev).
func (c *Cell) WaterDepth(stillWaterLevel float64) float64 {
	d := stillWaterLevel - c.SedimentTopElev()
	if d < 0 {
		return 0
	}
	return d
}

// RemoveCliffSediment iterates the layer stack, calling RemoveCliff on each
// layer, then recomputes layer elevations. Invoked exactly once per cell
// when the cliff landform transitions to Sea.
func (c *Cell) RemoveCliffSediment() {
	for i := range c.Layers {
		c.Layers[i].RemoveCliff()
	}
	c.CalcAllLayerElevs()
}

// ResetTransient zeroes every transient field while preserving basement,
// sediment stack, landform, and intervention code.
func (c *Cell) ResetTransient() {
	c.Transient = Transient{}
}

// CheckInvariants validates the per-cell sediment invariants, panicking (a
// programmer-error signal, not a data error) on violation.
func (c *Cell) CheckInvariants() {
	if c.SedimentTopElev() < c.Basement-1e-9 {
		chk.Panic("Cell.CheckInvariants: sedimentTopElev %g < basement %g", c.SedimentTopElev(), c.Basement)
	}
	for i := range c.Layers {
		l := &c.Layers[i]
		for f := Fine; f <= Coarse; f++ {
			if l.Unconsolidated.NotchLost(f) > l.Unconsolidated.Present(f)+1e-9 {
				chk.Panic("Cell.CheckInvariants: layer %d unconsolidated notchLost > present for fraction %d", i, f)
			}
			if l.Consolidated.NotchLost(f) > l.Consolidated.Present(f)+1e-9 {
				chk.Panic("Cell.CheckInvariants: layer %d consolidated notchLost > present for fraction %d", i, f)
			}
		}
	}
}
