// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements the timestep driver (component I): the fixed
// nine-phase per-step sequence, grand-total accumulators, and the
// cooperative cancellation hook, wired over every other component.
package sim

// kahanSum is a Kahan-compensated running sum, used for the grand totals
// so that millions of small per-step increments do not drift.
type kahanSum struct {
	sum, c float64
}

func (k *kahanSum) add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Accumulators holds the per-step and grand-total sediment-budget
// bookkeeping.
type Accumulators struct {
	ThisStepPotentialErosion float64
	ThisStepActualErosion    float64
	ThisStepFineErosion      float64
	ThisStepSandErosion      float64
	ThisStepCoarseErosion    float64

	ThisStepCliffCollapseFine   float64
	ThisStepCliffCollapseSand   float64
	ThisStepCliffCollapseCoarse float64

	ThisStepSedLost float64

	MinStillWaterLevel float64
	MaxStillWaterLevel float64
	stepsRun           int

	grandPotential kahanSum
	grandActual    kahanSum
	grandCliff     kahanSum
	grandSedLost   kahanSum
}

// GrandTotalPotentialErosion returns the accumulated potential erosion
// depth across every step run so far.
func (a *Accumulators) GrandTotalPotentialErosion() float64 { return a.grandPotential.sum }

// GrandTotalActualErosion returns the accumulated actual erosion depth.
func (a *Accumulators) GrandTotalActualErosion() float64 { return a.grandActual.sum }

// GrandTotalCliffCollapse returns the accumulated cliff-collapse volume
// (fine + sand + coarse).
func (a *Accumulators) GrandTotalCliffCollapse() float64 { return a.grandCliff.sum }

// GrandTotalSedLost returns the accumulated off-grid sediment export.
func (a *Accumulators) GrandTotalSedLost() float64 { return a.grandSedLost.sum }

// resetStep zeroes the per-step fields at the start of a new step.
func (a *Accumulators) resetStep() {
	a.ThisStepPotentialErosion = 0
	a.ThisStepActualErosion = 0
	a.ThisStepFineErosion = 0
	a.ThisStepSandErosion = 0
	a.ThisStepCoarseErosion = 0
	a.ThisStepCliffCollapseFine = 0
	a.ThisStepCliffCollapseSand = 0
	a.ThisStepCliffCollapseCoarse = 0
	a.ThisStepSedLost = 0
}

// AddActualErosion records one cell's actual-erosion partition.
func (a *Accumulators) AddActualErosion(fine, sand, coarse float64) {
	a.ThisStepFineErosion += fine
	a.ThisStepSandErosion += sand
	a.ThisStepCoarseErosion += coarse
	a.ThisStepActualErosion += fine + sand + coarse
}

// AddCliffCollapse records one cell's collapse mass, exactly once.
func (a *Accumulators) AddCliffCollapse(fine, sand, coarse float64) {
	a.ThisStepCliffCollapseFine += fine
	a.ThisStepCliffCollapseSand += sand
	a.ThisStepCliffCollapseCoarse += coarse
}

// AddSedLost records off-grid sediment export. Its one caller is
// collapseCliffs, passing the talus SedLost from cliff.Redistribute.
func (a *Accumulators) AddSedLost(v float64) {
	a.ThisStepSedLost += v
}

// commitStep folds the step's totals into the compensated grand totals and
// tracks the still-water-level envelope.
func (a *Accumulators) commitStep(stillWaterLevel float64) {
	a.grandPotential.add(a.ThisStepPotentialErosion)
	a.grandActual.add(a.ThisStepActualErosion)
	a.grandCliff.add(a.ThisStepCliffCollapseFine + a.ThisStepCliffCollapseSand + a.ThisStepCliffCollapseCoarse)
	a.grandSedLost.add(a.ThisStepSedLost)

	if a.stepsRun == 0 || stillWaterLevel < a.MinStillWaterLevel {
		a.MinStillWaterLevel = stillWaterLevel
	}
	if a.stepsRun == 0 || stillWaterLevel > a.MaxStillWaterLevel {
		a.MaxStillWaterLevel = stillWaterLevel
	}
	a.stepsRun++
}
