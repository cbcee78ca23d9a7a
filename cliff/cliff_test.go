// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliff

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

func TestCollapseTrigger01(tst *testing.T) {

	chk.PrintTitle("CollapseTrigger01: overhang crosses the collapse threshold on the second deepening")

	cellSide := 1.0
	s := sediment.CliffState{Remaining: cellSide, NotchOverhang: 0}
	threshold := 0.5 * cellSide
	waveEnergyDeepen := 0.3 * cellSide // cliffErodibility * waveEnergy for this step

	erodeNotch(&s, waveEnergyDeepen)
	if ReadyToCollapse(s, threshold) {
		tst.Fatal("should not be ready to collapse after step 1")
	}

	erodeNotch(&s, waveEnergyDeepen)
	if math.Abs(s.NotchOverhang-0.6*cellSide) > 1e-9 {
		tst.Fatalf("NotchOverhang = %g, want 0.6", s.NotchOverhang)
	}
	if !ReadyToCollapse(s, threshold) {
		tst.Fatal("expected collapse to fire on step 2")
	}
}

func TestAccountMassAboveSedimentTop01(tst *testing.T) {

	chk.PrintTitle("AccountMassAboveSedimentTop01: a notch above the sediment top is a recoverable CliffNotch error")

	c := sediment.NewCell(0, 1)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Sand, 1)
	c.CalcAllLayerElevs()

	s := &sediment.CliffState{NotchBaseElev: 100}
	_, err := AccountMass(c, s, 0, 1, 0.1)
	if err == nil {
		tst.Fatal("expected a CliffNotch error")
	}
}

func TestAccountMassTransfersToNotchLost01(tst *testing.T) {

	chk.PrintTitle("AccountMassTransfersToNotchLost01: deepening moves present depth into the notch-lost ledger")

	c := sediment.NewCell(0, 1)
	c.Layers[0].Unconsolidated.SetPresent(sediment.Sand, 1)
	c.CalcAllLayerElevs()

	s := &sediment.CliffState{NotchBaseElev: 0.5}
	removed, err := AccountMass(c, s, 0, 1, 0.2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if removed.Sand <= 0 {
		tst.Fatalf("expected positive sand moved to notch-lost, got %g", removed.Sand)
	}
	if c.Layers[0].Unconsolidated.NotchLost(sediment.Sand) <= 0 {
		tst.Fatal("NotchLost not incremented")
	}
}

func TestRedistributeDeliversShare01(tst *testing.T) {

	chk.PrintTitle("RedistributeDeliversShare01: talus deposition places exactly the collapse volume when capacity allows")

	g := grid.New(20, 20, 1, 0, 0, 1)
	g.Walk(func(col, row int, c *sediment.Cell) {
		c.Basement = -5
		c.CalcAllLayerElevs()
	})

	origin := g.GridToExternal(geom.Point2I{Col: 10, Row: 10})
	params := DeanParams{DA: 0.1, PlanviewWidth: 1, PlanviewLength: 5}
	ratio := FractionRatio{Sand: 0.7, Coarse: 0.3}
	erod := [3]float64{1, 1, 1}

	dep := Redistribute(g, origin, 180, geom.RightHanded, 0, 0.5, ratio, erod, params)

	chk.Float64(tst, "delivered equals the collapse volume", 1e-9, dep.Delivered, 0.5)
	if dep.SedLost != 0 {
		tst.Fatalf("unexpected sediment lost %g on an in-grid profile", dep.SedLost)
	}
}

func TestRedistributeOffGridExports01(tst *testing.T) {

	chk.PrintTitle("RedistributeOffGridExports01: a profile running off-grid exports its share as sediment lost")

	g := grid.New(20, 20, 1, 0, 0, 1)
	g.Walk(func(col, row int, c *sediment.Cell) {
		c.Basement = -5
		c.CalcAllLayerElevs()
	})

	// collapse right at the western edge: the seaward normal leaves the grid
	origin := g.GridToExternal(geom.Point2I{Col: 1, Row: 10})
	params := DeanParams{DA: 0.1, PlanviewWidth: 1, PlanviewLength: 5}

	dep := Redistribute(g, origin, 180, geom.RightHanded, 0, 0.5, FractionRatio{Sand: 1}, [3]float64{1, 1, 1}, params)

	chk.Float64(tst, "whole share exported", 1e-9, dep.SedLost, 0.5)
	if dep.Delivered != 0 {
		tst.Fatalf("unexpected delivery %g from an off-grid profile", dep.Delivered)
	}
}

func TestDeanEquilibriumDepth01(tst *testing.T) {

	chk.PrintTitle("DeanEquilibriumDepth01: h(y) = dA*y^(2/3) matches the worked example")

	dA := 0.1
	y := 100.0
	h := dA * math.Pow(y, 2.0/3.0)
	want := 2.154
	if math.Abs(h-want) > 1e-3 {
		tst.Fatalf("h(100) = %g, want approx %g", h, want)
	}
}
