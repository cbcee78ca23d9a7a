// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile implements the coast-normal profile builder (component
// F): emission of profiles at a configured along-coast spacing, endpoint
// selection by handedness, DDA rasterization, and intersection checks.
package profile

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

// Options configures profile emission (the coastNormal* config keys).
type Options struct {
	AvgSpacing    float64 // metres
	Length        float64 // metres
	RandSpaceFact float64 // scales the Gaussian spacing perturbation, 0 disables it
	CellSide      float64
}

// Profile is a coast-normal line: the index of its starting coast point, the
// two-point external-CRS segment, and (after rasterization) the ordered
// sequence of grid cells it crosses, index 0 being the coast cell.
type Profile struct {
	StartCoastIndex int
	Start, End      geom.Point2D
	Cells           []geom.Point2I
}

// Emit walks along smoothed, using rawCells (the unsmoothed coast cell
// trace) for start-point centroids, and emits a new profile every Delta-s
// metres of traversed coast length, perturbed by a zero-mean Gaussian term
// scaled by opt.RandSpaceFact and floored at one cell side.
// coastTangent(i) must return the coastline tangent azimuth at coast point
// i (coast.FluxOrientation), used to pick the seaward endpoint.
func Emit(g *grid.RasterGrid, smoothed *geom.Polyline, rawCells []geom.Point2I, hand geom.Handedness,
	coastTangent func(i int) float64, opt Options, rnd *distuv.Normal) ([]*Profile, []error) {

	var profiles []*Profile
	var warnings []error

	n := smoothed.Len()
	if n < 2 {
		return profiles, warnings
	}

	floor := opt.CellSide
	var traveled, nextEmit float64
	nextEmit = spacingFor(opt, rnd, floor)

	for i := 1; i < n; i++ {
		seg := smoothed.At(i - 1).Dist(smoothed.At(i))
		traveled += seg
		if traveled < nextEmit {
			continue
		}
		traveled = 0
		nextEmit = spacingFor(opt, rnd, floor)

		p, err := emitOne(g, rawCells, i, coastTangent(i), hand, opt)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, warnings
}

func spacingFor(opt Options, rnd *distuv.Normal, floor float64) float64 {
	ds := opt.AvgSpacing
	if opt.RandSpaceFact != 0 && rnd != nil {
		ds += opt.RandSpaceFact * rnd.Rand()
	}
	if ds < floor {
		ds = floor
	}
	return ds
}

func emitOne(g *grid.RasterGrid, rawCells []geom.Point2I, coastIdx int, tangent float64, hand geom.Handedness, opt Options) (*Profile, error) {
	coastCell := rawCells[coastIdx]
	start := g.GridToExternal(coastCell)

	// candidate perpendicular point on the seaward side
	tangentDirPoint := geom.Point2D{
		X: start.X + math.Sin(tangent*math.Pi/180),
		Y: start.Y + math.Cos(tangent*math.Pi/180),
	}
	end := geom.Perpendicular(start, tangentDirPoint, opt.Length, seawardSide(hand))

	if !g.IsWithinGrid(g.ExternalToGrid(end)) {
		return nil, errs.New(errs.OffGridEndpoint, "profile endpoint at coast index %d falls outside the grid", coastIdx)
	}

	cells, err := rasterize(g, start, end)
	if err != nil {
		return nil, err
	}

	return &Profile{StartCoastIndex: coastIdx, Start: start, End: end, Cells: cells}, nil
}

// seawardSide picks the side, relative to the coast tangent, that lies
// towards the sea: for a RightHanded coast (sea on the right when walking
// start->end) the seaward perpendicular is the right-hand side.
func seawardSide(hand geom.Handedness) geom.Handedness {
	return hand
}

// rasterize walks a DDA line from p0 to p1 in grid-CRS, clamping to the
// grid, and rejects the profile (LineToGrid) if fewer than three cells
// result. Dry-land/coastline rejection is left to ValidateAgainstGrid,
// since package profile has no notion of "dry"; rasterize only produces the
// cell sequence and the length check.
func rasterize(g *grid.RasterGrid, p0, p1 geom.Point2D) ([]geom.Point2I, error) {
	a := g.ExternalToGrid(p0)
	b := g.ExternalToGrid(p1)

	dc := b.Col - a.Col
	dr := b.Row - a.Row
	steps := dc
	if dr > steps {
		steps = dr
	}
	if -dc > steps {
		steps = -dc
	}
	if -dr > steps {
		steps = -dr
	}
	if steps == 0 {
		steps = 1
	}

	var cells []geom.Point2I
	seen := map[geom.Point2I]bool{}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		p := geom.Point2I{
			Col: a.Col + int(math.Round(float64(dc)*t)),
			Row: a.Row + int(math.Round(float64(dr)*t)),
		}
		p = g.ClampToGrid(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		cells = append(cells, p)
	}
	if len(cells) < 3 {
		return nil, errs.New(errs.LineToGrid, "profile rasterized to fewer than three cells")
	}
	return cells, nil
}

// ValidateAgainstGrid rejects a rasterized profile (LineToGrid) if any cell
// beyond index 0 is dry land (water depth <= 0 at still-water level eta) or
// is already marked as coastline.
func ValidateAgainstGrid(g *grid.RasterGrid, p *Profile, eta float64) error {
	for i := 1; i < len(p.Cells); i++ {
		c := g.Cell(p.Cells[i].Col, p.Cells[i].Row)
		if c.WaterDepth(eta) <= 0 {
			return errs.New(errs.LineToGrid, "profile cell %d is dry land", i)
		}
		if c.IsCoastline {
			return errs.New(errs.LineToGrid, "profile cell %d is already coastline", i)
		}
	}
	return nil
}

// Intersect reports the first pair of valid profiles on the same coast that
// intersect. Intersections are logged, never pruned automatically.
func Intersect(profiles []*Profile) (i, j int, pt geom.Point2D, found bool) {
	for a := 0; a < len(profiles); a++ {
		for b := a + 1; b < len(profiles); b++ {
			if p, ok := geom.SegmentIntersect(profiles[a].Start, profiles[a].End, profiles[b].Start, profiles[b].End); ok {
				return a, b, p, true
			}
		}
	}
	return 0, 0, geom.Point2D{}, false
}
