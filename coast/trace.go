// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coast

import (
	"math/rand"

	"github.com/ferid60433/coastalme-sub000/diag"
	"github.com/ferid60433/coastalme-sub000/errs"
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

const (
	roundLoopMax = 50000
	coastMin     = 9
	matchWindow  = 25 // cells
)

// Direction is one of the four grid-axis compass directions used by the
// wall-follower.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) delta() (dc, dr int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default: // West
		return -1, 0
	}
}

func (d Direction) turnRight() Direction { return (d + 1) % 4 }
func (d Direction) turnLeft() Direction  { return (d + 3) % 4 }
func (d Direction) reverse() Direction   { return (d + 2) % 4 }

func (d Direction) move(p geom.Point2I) geom.Point2I {
	dc, dr := d.delta()
	return geom.Point2I{Col: p.Col + dc, Row: p.Row + dr}
}

// priority returns the candidate-search priority [outward, straight, inward]
// for the given facing direction and handedness: RightHanded follows the
// sea on its right, so "outward" (towards the sea) is a right turn.
func priority(dir Direction, h geom.Handedness) [3]Direction {
	if h == geom.RightHanded {
		return [3]Direction{dir.turnRight(), dir, dir.turnLeft()}
	}
	return [3]Direction{dir.turnLeft(), dir, dir.turnRight()}
}

// edgePoint is a candidate coastline endpoint found during edge discovery.
type edgePoint struct {
	pos      geom.Point2I
	edge     Direction // which grid edge it lies on (N/E/S/W edge of the grid)
	hand     geom.Handedness
	searchIn Direction // initial inward search direction
	matched  bool
}

func isSea(g *grid.RasterGrid, p geom.Point2I, eta float64) bool {
	if !g.IsWithinGrid(p) {
		return false
	}
	return g.Cell(p.Col, p.Row).WaterDepth(eta) > 0
}

// findEdgePoints walks one grid edge and returns every transition point
// between adjacent cells where the sediment-top elevation crosses the
// still-water level. Handedness records which side the sea lies
// on when the trace walks inward from the land cell of the transition: the
// sea-side neighbour relative to the inward facing direction decides it.
func findEdgePoints(g *grid.RasterGrid, edge Direction, eta float64) []edgePoint {
	var pts []edgePoint
	var n int
	var at func(i int) geom.Point2I
	var inward, walk Direction

	switch edge {
	case North:
		n, inward, walk = g.W, South, East
		at = func(i int) geom.Point2I { return geom.Point2I{Col: i, Row: 0} }
	case South:
		n, inward, walk = g.W, North, East
		at = func(i int) geom.Point2I { return geom.Point2I{Col: i, Row: g.H - 1} }
	case West:
		n, inward, walk = g.H, East, South
		at = func(i int) geom.Point2I { return geom.Point2I{Col: 0, Row: i} }
	default: // East
		n, inward, walk = g.H, West, South
		at = func(i int) geom.Point2I { return geom.Point2I{Col: g.W - 1, Row: i} }
	}

	for i := 0; i < n-1; i++ {
		a, b := at(i), at(i+1)
		seaA, seaB := isSea(g, a, eta), isSea(g, b, eta)
		if seaA == seaB {
			continue
		}
		if seaA && !seaB {
			// downhill into sea walking b->a: the trace starts on the
			// land cell b, facing inward, with the sea on the reverse-walk
			// side of the edge
			pts = append(pts, edgePoint{pos: b, edge: edge, hand: handFor(inward, walk.reverse()), searchIn: inward})
		} else {
			pts = append(pts, edgePoint{pos: a, edge: edge, hand: handFor(inward, walk), searchIn: inward})
		}
	}
	return pts
}

// handFor returns the handedness of a trace that starts facing `facing`
// with the sea towards `seaSide`.
func handFor(facing, seaSide Direction) geom.Handedness {
	if facing.turnRight() == seaSide {
		return geom.RightHanded
	}
	return geom.LeftHanded
}

// edgeOrder returns the four edges in an order controlled by rnd: a
// Fisher-Yates shuffle when randomize is true, the fixed N,E,S,W order
// otherwise. reverse flips whichever order results, for the
// erodeCoastAlternateDir sweep.
func edgeOrder(rnd *rand.Rand, randomize, reverse bool) [4]Direction {
	order := [4]Direction{North, East, South, West}
	if randomize {
		for i := len(order) - 1; i > 0; i-- {
			j := rnd.Intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}
	}
	if reverse {
		order[0], order[3] = order[3], order[0]
		order[1], order[2] = order[2], order[1]
	}
	return order
}

// traceFrom runs the wall-follower from an unmatched start endpoint,
// returning the sequence of land cells visited (marked as coastline) and
// whether it reached a grid edge after having left the start edge, within
// the iteration and length caps. The coastMin length and end != start
// checks are left to Trace.
func traceFrom(g *grid.RasterGrid, eta float64, start edgePoint) (cells []geom.Point2I, ok bool) {
	pos := start.pos
	dir := start.searchIn
	hand := start.hand
	leftStartEdge := false

	cells = append(cells, pos)
	if c := g.Cell(pos.Col, pos.Row); !c.IsCoastline {
		c.IsCoastline = true
	}

	for iter := 0; iter < roundLoopMax && len(cells) < coastMax(g); iter++ {
		cand := priority(dir, hand)
		moved := false
		prev := pos
		for _, c := range cand {
			np := c.move(pos)
			if !g.IsWithinGrid(np) {
				continue
			}
			if isSea(g, np, eta) {
				cell := g.Cell(pos.Col, pos.Row)
				cell.IsCoastline = true
				dir = c
				continue
			}
			pos = np
			dir = c
			moved = true
			break
		}
		if !moved {
			// last resort: back-step, rotate 180
			dir = dir.reverse()
			pos = dir.move(prev)
			if !g.IsWithinGrid(pos) {
				pos = prev
			}
		}
		cells = append(cells, pos)

		if !onEdge(g, pos, start.edge) {
			leftStartEdge = true
		}
		if leftStartEdge && onGridEdge(g, pos) {
			return cells, true
		}
	}
	return cells, false
}

func coastMax(g *grid.RasterGrid) int {
	m := g.W
	if g.H > m {
		m = g.H
	}
	return 1000 * m
}

func onGridEdge(g *grid.RasterGrid, p geom.Point2I) bool {
	return p.Col == 0 || p.Row == 0 || p.Col == g.W-1 || p.Row == g.H-1
}

func samePos(a, b geom.Point2I) bool { return a.Col == b.Col && a.Row == b.Row }

// TraceResult is one validated raw coastline trace before conversion to a
// Coast (before smoothing and curvature/flux computation).
type TraceResult struct {
	Cells []geom.Point2I
	Hand  geom.Handedness
}

// Trace finds coastline(s) on the current grid at still-water level eta.
// rnd drives the edge-search order when randomize is true; reverse
// alternates the sweep direction (erodeCoastAlternateDir).
func Trace(g *grid.RasterGrid, eta float64, rnd *rand.Rand, randomize, reverse bool) ([]TraceResult, error) {
	var candidates []edgePoint
	for _, e := range edgeOrder(rnd, randomize, reverse) {
		candidates = append(candidates, findEdgePoints(g, e, eta)...)
	}
	if len(candidates) == 0 {
		return nil, errs.New(errs.FindCoast, "no coastline edge-crossing points found")
	}
	if len(candidates)%2 != 0 {
		diag.Warn("odd number of coastline edge-crossing points (%d); one endpoint will be left unmatched", len(candidates))
	}

	var results []TraceResult
	for i := range candidates {
		if candidates[i].matched {
			continue
		}
		cells, ok := traceFrom(g, eta, candidates[i])
		if !ok {
			continue
		}
		if len(cells) < coastMin {
			continue
		}
		if samePos(cells[len(cells)-1], cells[0]) {
			continue
		}
		end := cells[len(cells)-1]
		match := findMatch(g, candidates, i, end)
		if match < 0 {
			continue
		}
		candidates[i].matched = true
		candidates[match].matched = true
		for _, cl := range cells {
			g.Cell(cl.Col, cl.Row).IsCoastline = true
		}
		results = append(results, TraceResult{Cells: cells, Hand: candidates[i].hand})
	}
	return results, nil
}

// findMatch pairs a finished trace's end cell with the nearest unmatched
// candidate endpoint within the match window along the edge the end cell
// lies on (the end edge, which is usually not the start edge).
func findMatch(g *grid.RasterGrid, candidates []edgePoint, exclude int, end geom.Point2I) int {
	best, bestDist := -1, matchWindow+1
	for j, c := range candidates {
		if j == exclude || c.matched {
			continue
		}
		if !onEdge(g, end, c.edge) {
			continue
		}
		d := abs(c.pos.Col-end.Col) + abs(c.pos.Row-end.Row)
		if d <= matchWindow && d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// onEdge reports whether p lies on the given grid edge.
func onEdge(g *grid.RasterGrid, p geom.Point2I, edge Direction) bool {
	switch edge {
	case North:
		return p.Row == 0
	case South:
		return p.Row == g.H-1
	case West:
		return p.Col == 0
	default: // East
		return p.Col == g.W-1
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
