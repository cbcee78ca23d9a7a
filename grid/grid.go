// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the rectangular raster grid (component C): the
// W x H array of Cell, grid<->external CRS transforms, and the per-step
// reset and accounting that every other component relies on.
package grid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/sediment"
)

// Stats bundles the per-step accumulators kept on the grid.
type Stats struct {
	NSeaCells              int
	NCoastCells            int
	NPotentialErosionCells int
	NActualErosionCells    int
	TotSeaDepth            float64
}

// RasterGrid is a W x H array of Cell plus the affine grid->external
// transform (origin NW, uniform square cell side s).
type RasterGrid struct {
	W, H int
	Side float64 // cell side (m), effectively square

	originX, originY float64 // external CRS coords of the NW corner

	cells []*sediment.Cell // row-major, length W*H

	Stats Stats
}

// New allocates a W x H grid of cells with nLayers layers each, all sitting
// on a flat basement elevation of 0. Real basement elevations are set by the
// external raster adapter after construction.
func New(w, h int, side, originX, originY float64, nLayers int) *RasterGrid {
	if w <= 0 || h <= 0 {
		chk.Panic("grid.New: invalid dimensions %dx%d", w, h)
	}
	g := &RasterGrid{
		W: w, H: h, Side: side,
		originX: originX, originY: originY,
		cells: make([]*sediment.Cell, w*h),
	}
	for i := range g.cells {
		g.cells[i] = sediment.NewCell(0, nLayers)
	}
	return g
}

func (g *RasterGrid) index(col, row int) int { return row*g.W + col }

// Cell returns the cell at (col, row). Panics if out of range; callers must
// check IsWithinGrid first when the position may come from user-scale data.
func (g *RasterGrid) Cell(col, row int) *sediment.Cell {
	return g.cells[g.index(col, row)]
}

// Bounds returns the grid's cell rectangle, [0,W) x [0,H).
func (g *RasterGrid) Bounds() geom.Bounds {
	return geom.Bounds{MinCol: 0, MinRow: 0, MaxCol: g.W - 1, MaxRow: g.H - 1}
}

// IsWithinGrid reports whether (col, row) lies inside [0,W) x [0,H).
func (g *RasterGrid) IsWithinGrid(p geom.Point2I) bool {
	return g.Bounds().Contains(p)
}

// ClampToGrid clamps p into [0,W) x [0,H).
func (g *RasterGrid) ClampToGrid(p geom.Point2I) geom.Point2I {
	return g.Bounds().Clamp(p)
}

// GridToExternal converts a grid-CRS integer cell position (col,row) to the
// external CRS point at the cell's center.
func (g *RasterGrid) GridToExternal(p geom.Point2I) geom.Point2D {
	return geom.Point2D{
		X: g.originX + (float64(p.Col)+0.5)*g.Side,
		Y: g.originY - (float64(p.Row)+0.5)*g.Side,
	}
}

// ExternalToGrid converts an external-CRS point to the grid-CRS integer cell
// containing it (no bounds clamping).
func (g *RasterGrid) ExternalToGrid(p geom.Point2D) geom.Point2I {
	col := int((p.X - g.originX) / g.Side)
	row := int((g.originY - p.Y) / g.Side)
	return geom.Point2I{Col: col, Row: row}
}

// Reset zeroes every transient field on every cell and resets
// the grid-wide per-step accumulators.
func (g *RasterGrid) Reset() {
	g.Stats = Stats{}
	for _, c := range g.cells {
		c.ResetTransient()
	}
}

// Walk calls fn for every cell in row-major order.
func (g *RasterGrid) Walk(fn func(col, row int, c *sediment.Cell)) {
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			fn(col, row, g.Cell(col, row))
		}
	}
}

// RecalcStats recomputes Stats from the current per-cell transient state,
// given the still-water level for this step.
func (g *RasterGrid) RecalcStats(stillWaterLevel float64) {
	s := Stats{}
	g.Walk(func(col, row int, c *sediment.Cell) {
		d := c.WaterDepth(stillWaterLevel)
		if d > 0 {
			s.NSeaCells++
			s.TotSeaDepth += d
		}
		if c.IsCoastline {
			s.NCoastCells++
		}
		if c.PotentialErosion > 0 {
			s.NPotentialErosionCells++
		}
		if c.ActualErosion > 0 {
			s.NActualErosionCells++
		}
	})
	g.Stats = s
}
