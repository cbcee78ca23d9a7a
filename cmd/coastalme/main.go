// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command coastalme runs the core simulation driver against a run datafile
// and a shape-function file. Raster ingestion (the basement DEM and initial
// sediment rasters) is an external collaborator's job per the config
// contract (see package external): this command bootstraps a synthetic
// west-sea/east-land test grid from its own -gridw, -gridh, -gridside and
// -sanddepth flags rather than parsing any particular GIS raster format itself.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/ferid60433/coastalme-sub000/config"
	"github.com/ferid60433/coastalme-sub000/diag"
	"github.com/ferid60433/coastalme-sub000/erosion"
	"github.com/ferid60433/coastalme-sub000/external"
	"github.com/ferid60433/coastalme-sub000/grid"
	"github.com/ferid60433/coastalme-sub000/sediment"
	"github.com/ferid60433/coastalme-sub000/sim"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nCoastalME -- coastal morphological evolution\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	rundataFlag := flag.String("rundata", "", "path to the run datafile (JSON)")
	shapeFnFlag := flag.String("shapefunction", "", "path to the erosion shape-function file")
	gridW := flag.Int("gridw", 100, "bootstrap grid width, cells")
	gridH := flag.Int("gridh", 100, "bootstrap grid height, cells")
	gridSide := flag.Float64("gridside", 1.0, "bootstrap grid cell side, metres")
	sandDepth := flag.Float64("sanddepth", 5.0, "bootstrap land sand-layer thickness, metres")
	flag.Parse()

	if *rundataFlag == "" {
		chk.Panic("Please provide -rundata <file.json>")
	}
	if *shapeFnFlag == "" {
		chk.Panic("Please provide -shapefunction <file>")
	}

	defer utl.DoProf(false)()

	cfg, err := config.Read(*rundataFlag)
	if err != nil {
		chk.Panic("%v", err)
	}

	points, err := external.ReadShapeFunctionFile(*shapeFnFlag)
	if err != nil {
		chk.Panic("%v", err)
	}
	sf, err := erosion.NewShapeFunction(points)
	if err != nil {
		chk.Panic("%v", err)
	}

	g := grid.New(*gridW, *gridH, *gridSide, 0, 0, cfg.Layers)
	bootstrapWestSeaEastLand(g, cfg.InitialStillWaterLevel, *sandDepth)

	d := sim.NewDriver(g, cfg, sf, nil)

	n := cfg.NumSteps()
	diag.Info("running %d steps of %g hours", n, cfg.TimeStep)
	if err := d.Run(context.Background(), n, nil); err != nil {
		chk.Panic("%v", err)
	}

	diag.Info("finished at step %d: grand total actual erosion %g m, sediment lost %g m",
		d.Step, d.Accum.GrandTotalActualErosion(), d.Accum.GrandTotalSedLost())
}

// bootstrapWestSeaEastLand gives the western half of the grid a basement
// well below stillWaterLevel (sea, no sediment) and the eastern half a
// basement well above it with a single erodible unconsolidated sand layer
// of sandDepth, so the driver always has a coastline to trace on a
// from-scratch run.
func bootstrapWestSeaEastLand(g *grid.RasterGrid, stillWaterLevel, sandDepth float64) {
	half := g.W / 2
	g.Walk(func(col, row int, c *sediment.Cell) {
		if col < half {
			c.Basement = stillWaterLevel - 5
			c.Landform = sediment.NewSea()
		} else {
			c.Basement = stillWaterLevel + 5
			c.Landform = sediment.NewHinterland()
			if len(c.Layers) > 0 {
				c.Layers[0].Unconsolidated.SetPresent(sediment.Sand, sandDepth)
			}
		}
		c.CalcAllLayerElevs()
	})
}
