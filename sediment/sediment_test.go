// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sediment

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLayer01(tst *testing.T) {

	chk.PrintTitle("Layer01: present/lost invariant")

	var l SedimentLayer
	l.SetPresent(Fine, 1.0)
	l.IncrNotchLost(Fine, 0.4)
	chk.Float64(tst, "fine present", 1e-12, l.Present(Fine), 1.0)
	chk.Float64(tst, "fine lost", 1e-12, l.NotchLost(Fine), 0.4)

	// lost is clamped at present even when delta would overshoot
	l.IncrNotchLost(Fine, 10)
	chk.Float64(tst, "fine lost clamped", 1e-12, l.NotchLost(Fine), 1.0)
}

func TestRemoveCliff01(tst *testing.T) {

	chk.PrintTitle("RemoveCliff01: notch-lost material permanently removed")

	var l SedimentLayer
	l.SetPresent(Sand, 2.0)
	l.IncrNotchLost(Sand, 0.5)
	l.RemoveCliff()
	chk.Float64(tst, "sand present after removal", 1e-12, l.Present(Sand), 1.5)
	chk.Float64(tst, "sand lost after removal", 1e-12, l.NotchLost(Sand), 0)
}

func TestCellElevations01(tst *testing.T) {

	chk.PrintTitle("CellElevations01: top/base elevations and water depth")

	c := NewCell(0, 2)
	c.Layers[1].Unconsolidated.SetPresent(Sand, 3) // bottom layer
	c.Layers[0].Unconsolidated.SetPresent(Fine, 2) // top layer
	c.CalcAllLayerElevs()

	chk.Float64(tst, "sediment top elev", 1e-12, c.SedimentTopElev(), 5)
	chk.Float64(tst, "layer0 base elev", 1e-12, c.LayerBaseElev(0), 3)
	chk.Float64(tst, "layer1 base elev (basement)", 1e-12, c.LayerBaseElev(1), 0)
	chk.Float64(tst, "water depth above", 1e-12, c.WaterDepth(8), 3)
	chk.Float64(tst, "water depth below", 1e-12, c.WaterDepth(1), 0)
}

func TestCellInvariants01(tst *testing.T) {

	chk.PrintTitle("CellInvariants01: panics on basement violation")

	defer func() {
		if r := recover(); r == nil {
			tst.Fatal("expected panic for sedimentTop < basement")
		}
	}()

	c := NewCell(10, 1)
	c.layerTopElev[0] = 5 // corrupt directly to exercise the check
	c.CheckInvariants()
}
