// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ferid60433/coastalme-sub000/config"
	"github.com/ferid60433/coastalme-sub000/diag"
	"github.com/ferid60433/coastalme-sub000/erosion"
	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/external"
	"github.com/ferid60433/coastalme-sub000/grid"
)

// Driver owns the four partitioned pieces of simulation state: Config,
// RasterGrid, the traced Coasts, and Accumulators. It is the only component
// that reads and writes all four.
type Driver struct {
	Cfg   *config.Config
	Grid  *grid.RasterGrid
	Accum Accumulators

	ShapeFn *erosion.ShapeFunction
	Tide    external.TideSeries

	// Forcing overrides the configuration's constant deep-water wave values
	// when non-nil, letting a collaborator drive time-varying wave climate.
	Forcing external.WaveForcing

	randEdge  *rand.Rand
	randSpace *distuv.Normal

	StillWaterLevel float64
	Step            int

	coasts []*coastState

	lastSuspendedAdded float64 // this step's fine erosion + fine cliff collapse, as actually spread in updateGrid
}

// NewDriver builds a Driver ready to run. sf is the pre-built erosion
// shape-function lookup (erosion.NewShapeFunction); tide is nil-safe (a nil
// TideSeries is treated as a constant still-water level).
func NewDriver(g *grid.RasterGrid, cfg *config.Config, sf *erosion.ShapeFunction, tide external.TideSeries) *Driver {
	d := &Driver{
		Cfg:             cfg,
		Grid:            g,
		ShapeFn:         sf,
		Tide:            tide,
		StillWaterLevel: cfg.InitialStillWaterLevel,
		randEdge:        rand.New(rand.NewSource(cfg.RandomSeeds[0])),
	}
	if cfg.CoastNormalRandSpaceFact != 0 {
		d.randSpace = &distuv.Normal{Mu: 0, Sigma: 1, Src: exprand.NewSource(uint64(cfg.RandomSeeds[1]))}
	}
	return d
}

// Run advances the simulation up to n steps. It stops early without error
// if shouldStop reports true between steps, and returns ctx.Err() if ctx is
// cancelled before a step. Steps are atomic: there is no cancellation point
// inside a step.
func (d *Driver) Run(ctx context.Context, n int, shouldStop func() bool) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if shouldStop != nil && shouldStop() {
			return nil
		}
		if err := d.Step_(); err != nil {
			diag.Fatal("%v", err)
			return err
		}
	}
	return nil
}

// Step_ runs the fixed nine-phase sequence once. Named with a trailing
// underscore to avoid colliding with the Step field.
func (d *Driver) Step_() error {
	d.Accum.resetStep()

	d.updateStillWaterLevel()
	d.Grid.Reset()

	if err := d.locateCoastsAndProfiles(); err != nil {
		return err
	}
	d.propagateWaves()

	d.erodeShorePlatform()

	if d.Cfg.DoCliffCollapse {
		d.collapseCliffs()
	}

	// (7) longshore transport: declared in the config surface
	// (doAlongshoreTransport) but inactive; eroded sand and coarse are
	// tallied as fluxes only.

	d.updateGrid()

	if err := d.checkMassBalance(); err != nil {
		return err
	}

	d.Grid.RecalcStats(d.StillWaterLevel)
	if d.Grid.Stats.NSeaCells == 0 {
		return errs.New(errs.NoSeaCells, "step %d reduced sea cell count to zero", d.Step)
	}

	d.Accum.commitStep(d.StillWaterLevel)
	d.Step++
	return nil
}

// minStillWaterLevel returns the lowest still-water level seen so far this
// run, including the current step's (the committed envelope lags one step).
func (d *Driver) minStillWaterLevel() float64 {
	if d.Accum.stepsRun == 0 || d.StillWaterLevel < d.Accum.MinStillWaterLevel {
		return d.StillWaterLevel
	}
	return d.Accum.MinStillWaterLevel
}

func (d *Driver) updateStillWaterLevel() {
	offset := 0.0
	if d.Tide != nil {
		offset = d.Tide.Offset(d.Step)
	}
	d.StillWaterLevel = d.Cfg.InitialStillWaterLevel + offset
}

// checkMassBalance verifies that this step's actual fine erosion plus fine
// from cliff collapse equals the fine spread as suspended sediment, within
// tolerance.
func (d *Driver) checkMassBalance() error {
	const tolerance = 1e-4
	want := d.Accum.ThisStepFineErosion + d.Accum.ThisStepCliffCollapseFine
	got := d.lastSuspendedAdded
	if got < want-tolerance || got > want+tolerance {
		return errs.New(errs.MassBalance, "mass balance violated: suspended added %g, want %g", got, want)
	}
	return nil
}
