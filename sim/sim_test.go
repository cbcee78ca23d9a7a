// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/config"
	"github.com/ferid60433/coastalme-sub000/erosion"
	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/grid"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

func westSeaEastLandGrid() *grid.RasterGrid {
	g := grid.New(10, 10, 1, 0, 0, 1)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			c := g.Cell(col, row)
			if col < 5 {
				c.Basement = 0 // sea
			} else {
				c.Basement = 10 // land
			}
			c.CalcAllLayerElevs()
		}
	}
	return g
}

func quietConfig() *config.Config {
	return &config.Config{
		SimulationDuration:            2,
		TimeStep:                      1,
		InitialStillWaterLevel:        5,
		WavePeriod:                    8,
		OffshoreWaveHeight:            0, // no wave forcing: erosion and cliff phases are no-ops
		OffshoreWaveOrientation:       0,
		R:                             1e6,
		BeachProtectionFactor:         1,
		FineErodibility:               1,
		SandErodibility:               1,
		CoarseErodibility:             1,
		CliffErodibility:              0,
		NotchOverhangAtCollapse:       1,
		NotchBaseBelowStillWaterLevel: 0,
		CliffDepositionA:              0,
		CliffDepositionPlanviewWidth:  1,
		CliffDepositionPlanviewLength: 1,
		CoastNormalAvgSpacing:         2,
		CoastNormalLength:             3,
		CoastNormalRandSpaceFact:      0,
		CoastSmooth:                   "none",
		CoastSmoothWindow:             1,
		SavGolCoastPoly:               1,
		ProfileSmoothWindow:           1,
		CoastCurvatureInterval:        1,
		RandomCoastEdgeSearch:         false,
		DoCliffCollapse:               false,
		Layers:                        1,
		RandomSeeds:                   [2]int64{1, 2},
	}
}

func quietShapeFunction(tst *testing.T) *erosion.ShapeFunction {
	sf, err := erosion.NewShapeFunction([]erosion.ControlPoint{
		{DOverDB: 0, Eps: -1, DEps: 1},
		{DOverDB: 1, Eps: 0, DEps: 1},
	})
	if err != nil {
		tst.Fatalf("unexpected error building shape function: %v", err)
	}
	return sf
}

func TestNewDriverDefaults01(tst *testing.T) {

	chk.PrintTitle("NewDriverDefaults01: a fresh driver starts at the configured still-water level and step zero")

	g := westSeaEastLandGrid()
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	chk.Float64(tst, "initial still water level", 1e-12, d.StillWaterLevel, cfg.InitialStillWaterLevel)
	if d.Step != 0 {
		tst.Fatalf("Step = %d, want 0", d.Step)
	}
}

func TestStepUniformGridFindCoastError01(tst *testing.T) {

	chk.PrintTitle("StepUniformGridFindCoastError01: a step over a uniform (all-sea) grid fails at coastline location")

	g := grid.New(5, 5, 1, 0, 0, 1) // basement 0 everywhere: all sea, no land/sea edge to find
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	err := d.Step_()
	if err == nil {
		tst.Fatal("expected an error from a uniform grid with no coastline")
	}
}

func TestStepRunsOnQuietCoast01(tst *testing.T) {

	chk.PrintTitle("StepRunsOnQuietCoast01: a zero-wave step locates the coast, finds no erosion, and balances")

	g := westSeaEastLandGrid()
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	if err := d.Step_(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d.Step != 1 {
		tst.Fatalf("Step = %d, want 1", d.Step)
	}
	if d.Grid.Stats.NSeaCells == 0 {
		tst.Fatal("expected sea cells to remain after a quiet step")
	}
	if d.Accum.ThisStepActualErosion != 0 {
		tst.Fatalf("expected zero erosion under zero wave forcing, got %g", d.Accum.ThisStepActualErosion)
	}
}

func TestLandformsPersistWithoutCliffCollapse01(tst *testing.T) {

	chk.PrintTitle("LandformsPersistWithoutCliffCollapse01: coast cells keep a landform even with collapse disabled")

	g := westSeaEastLandGrid()
	cfg := quietConfig() // DoCliffCollapse is false
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	if err := d.Step_(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	for row := 0; row < g.H; row++ {
		c := g.Cell(5, row)
		if !c.IsCoastline {
			continue
		}
		if c.Landform.Category != sediment.LandformCliff {
			tst.Fatalf("coast cell (5,%d) landform = %v, want Cliff", row, c.Landform.Category)
		}
		if c.Landform.Cliff.Remaining != g.Side {
			tst.Fatalf("fresh cliff remaining = %g, want cell side %g", c.Landform.Cliff.Remaining, g.Side)
		}
	}
}

func TestRunStopsEarly01(tst *testing.T) {

	chk.PrintTitle("RunStopsEarly01: Run honors a caller-supplied shouldStop predicate")

	g := westSeaEastLandGrid()
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	calls := 0
	err := d.Run(context.Background(), 5, func() bool {
		calls++
		return calls > 1
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d.Step != 1 {
		tst.Fatalf("Step = %d, want 1 (stopped after the first step)", d.Step)
	}
}

func TestRunStopsOnCancelledContext01(tst *testing.T) {

	chk.PrintTitle("RunStopsOnCancelledContext01: Run returns ctx.Err() once the context is already cancelled")

	g := westSeaEastLandGrid()
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, 5, nil)
	if err == nil {
		tst.Fatal("expected a context-cancellation error")
	}
	if d.Step != 0 {
		tst.Fatalf("Step = %d, want 0 (no step should have run)", d.Step)
	}
}

func TestCheckMassBalanceViolation01(tst *testing.T) {

	chk.PrintTitle("CheckMassBalanceViolation01: a mismatch between suspended-added and erosion totals is rejected")

	g := westSeaEastLandGrid()
	cfg := quietConfig()
	d := NewDriver(g, cfg, quietShapeFunction(tst), nil)

	d.Accum.ThisStepFineErosion = 1.0
	d.lastSuspendedAdded = 0.5

	err := d.checkMassBalance()
	if err == nil || !errs.Is(err, errs.MassBalance) {
		tst.Fatalf("expected a MassBalance error, got %v", err)
	}
}
