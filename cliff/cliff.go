// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliff implements the cliff-collapse lifecycle (component H):
// landform attachment on a fresh coast trace, notch deepening, the
// collapse trigger, notch-layer mass accounting, and Dean equilibrium
// talus redistribution.
package cliff

import (
	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

// Attach returns the CliffState a coast point should carry this step: the
// cell's own persistent state if it was already Cliff last step, or a
// fresh notch otherwise.
func Attach(c *sediment.Cell, coastIndex, pointOnCoastIndex int, minStillWaterLevel, cellSide float64) sediment.CliffState {
	if c.Landform.Category == sediment.LandformCliff {
		s := c.Landform.Cliff
		s.CoastIndex = coastIndex
		s.PointOnCoastIndex = pointOnCoastIndex
		return s
	}
	return sediment.CliffState{
		NotchBaseElev:     minStillWaterLevel,
		NotchOverhang:     0,
		Remaining:         cellSide,
		AccumWaveEnergy:   0,
		CoastIndex:        coastIndex,
		PointOnCoastIndex: pointOnCoastIndex,
	}
}

// Deepen accumulates this step's wave energy and applies notch erosion,
// returning the deepening actually applied.
func Deepen(s *sediment.CliffState, cellSide, cliffErodibility, stepWaveEnergy float64) float64 {
	s.AccumWaveEnergy += stepWaveEnergy
	deepen := cliffErodibility * stepWaveEnergy
	if deepen > cellSide {
		deepen = cellSide
	}
	return erodeNotch(s, deepen)
}

// erodeNotch reduces Remaining by min(Remaining, deepen) and grows
// NotchOverhang by the same amount, returning the applied deepening.
func erodeNotch(s *sediment.CliffState, deepen float64) float64 {
	applied := deepen
	if applied > s.Remaining {
		applied = s.Remaining
	}
	s.Remaining -= applied
	s.NotchOverhang += applied
	return applied
}

// ReadyToCollapse reports whether the notch has eaten through the cell or
// its overhang has grown past the collapse threshold.
func ReadyToCollapse(s sediment.CliffState, collapseThreshold float64) bool {
	return s.Remaining <= 0 || s.NotchOverhang >= collapseThreshold
}

// Removed is the per-fraction depth moved to the notch-lost ledger by one
// call to AccountMass.
type Removed struct {
	Fine, Sand, Coarse float64
}

// Total returns the sum of the three fractions.
func (r Removed) Total() float64 { return r.Fine + r.Sand + r.Coarse }

// AccountMass finds the layer containing the notch elevation and moves
// deepen/cellSide of every layer strictly above it (and the proportional
// remainder of the notch layer itself) from "present" into "notch-lost".
// It returns the total moved, for the step's cliff-collapse accumulator,
// and a recoverable CliffNotch error if the notch elevation lies above the
// sediment top (the caller skips that collapse and carries on).
func AccountMass(c *sediment.Cell, s *sediment.CliffState, notchBaseBelowSWL, cellSide, deepen float64) (Removed, error) {
	var out Removed
	if deepen <= 0 {
		return out, nil
	}

	notchElev := s.NotchBaseElev - notchBaseBelowSWL
	if notchElev > c.SedimentTopElev() {
		return out, errs.New(errs.CliffNotch, "notch elevation %g above sediment top %g", notchElev, c.SedimentTopElev())
	}

	nNotchLayer := -1
	for i := range c.Layers {
		if notchElev >= c.LayerBaseElev(i)-1e-9 && notchElev <= c.LayerTopElev(i)+1e-9 {
			nNotchLayer = i
			break
		}
	}
	if nNotchLayer < 0 {
		nNotchLayer = len(c.Layers) - 1
	}

	lossFrac := deepen / cellSide
	for i := 0; i < nNotchLayer; i++ {
		add := applyNotchLoss(&c.Layers[i], lossFrac)
		out.Fine += add.Fine
		out.Sand += add.Sand
		out.Coarse += add.Coarse
	}

	thickness := c.LayerTopElev(nNotchLayer) - c.LayerBaseElev(nNotchLayer)
	if thickness > 0 {
		notchFrac := (c.LayerTopElev(nNotchLayer) - notchElev) / thickness * lossFrac
		add := applyNotchLoss(&c.Layers[nNotchLayer], notchFrac)
		out.Fine += add.Fine
		out.Sand += add.Sand
		out.Coarse += add.Coarse
	}

	c.CalcAllLayerElevs()
	return out, nil
}

// applyNotchLoss increments the notch-lost counter of every fraction in
// both strata of layer by lossFrac of its not-yet-notch-lost present depth.
func applyNotchLoss(layer *sediment.CellLayer, lossFrac float64) Removed {
	var out Removed
	f1 := applyNotchLossOnStratum(&layer.Unconsolidated, lossFrac)
	f2 := applyNotchLossOnStratum(&layer.Consolidated, lossFrac)
	out.Fine = f1.Fine + f2.Fine
	out.Sand = f1.Sand + f2.Sand
	out.Coarse = f1.Coarse + f2.Coarse
	return out
}

func applyNotchLossOnStratum(sl *sediment.SedimentLayer, lossFrac float64) Removed {
	var out Removed
	for _, f := range []sediment.Fraction{sediment.Fine, sediment.Sand, sediment.Coarse} {
		remaining := sl.Present(f) - sl.NotchLost(f)
		if remaining <= 0 {
			continue
		}
		loss := lossFrac * remaining
		sl.IncrNotchLost(f, loss)
		switch f {
		case sediment.Fine:
			out.Fine = loss
		case sediment.Sand:
			out.Sand = loss
		case sediment.Coarse:
			out.Coarse = loss
		}
	}
	return out
}

// Settle finalizes a cell whose cliff has fully retreated: transitions its
// persistent landform to Sea and permanently removes the notch-lost
// material from the sediment present.
func Settle(c *sediment.Cell) {
	c.RemoveCliffSediment()
	c.Landform = sediment.NewSea()
}
