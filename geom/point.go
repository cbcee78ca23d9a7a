// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 2-D geometry primitives shared by the
// coastline tracer, profile builder, and wave field: real- and
// integer-valued points, polylines, smoothing filters, and the small
// intersection/perpendicular helpers those components need.
package geom

import "math"

// Point2D is an immutable real-valued (x, y) pair in the external CRS.
type Point2D struct {
	X, Y float64
}

// NewPoint2D creates a Point2D.
func NewPoint2D(x, y float64) Point2D { return Point2D{X: x, Y: y} }

// WithX returns a copy of p with X replaced.
func (p Point2D) WithX(x float64) Point2D { return Point2D{X: x, Y: p.Y} }

// WithY returns a copy of p with Y replaced.
func (p Point2D) WithY(y float64) Point2D { return Point2D{X: p.X, Y: y} }

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point2D) Scale(f float64) Point2D { return Point2D{X: p.X * f, Y: p.Y * f} }

// Dist returns the Euclidean distance between p and q.
func (p Point2D) Dist(q Point2D) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equals reports exact equality.
func (p Point2D) Equals(q Point2D) bool { return p.X == q.X && p.Y == q.Y }

// Point2I is an integer (col, row) pair in the grid CRS.
type Point2I struct {
	Col, Row int
}

// NewPoint2I creates a Point2I.
func NewPoint2I(col, row int) Point2I { return Point2I{Col: col, Row: row} }

// Equals reports equality.
func (p Point2I) Equals(q Point2I) bool { return p.Col == q.Col && p.Row == q.Row }

// Bounds is an inclusive integer rectangle in the grid CRS.
type Bounds struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point2I) bool {
	return p.Col >= b.MinCol && p.Col <= b.MaxCol && p.Row >= b.MinRow && p.Row <= b.MaxRow
}

// Clamp constrains p to b.
func (b Bounds) Clamp(p Point2I) Point2I {
	c, r := p.Col, p.Row
	if c < b.MinCol {
		c = b.MinCol
	}
	if c > b.MaxCol {
		c = b.MaxCol
	}
	if r < b.MinRow {
		r = b.MinRow
	}
	if r > b.MaxRow {
		r = b.MaxRow
	}
	return Point2I{Col: c, Row: r}
}

// Azimuth returns the compass bearing (degrees, 0=north, clockwise) of the
// vector from p to q. Used for flux orientation and wave direction.
func Azimuth(p, q Point2D) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Handedness records which side the sea lies on when walking a coastline
// from its start point to its end point.
type Handedness int

const (
	LeftHanded Handedness = iota
	RightHanded
)

// Perpendicular returns the point E such that segment PE is perpendicular to
// PQ, |PE| = length, and E lies on the side of PQ given by h (when walking
// from P towards Q, RightHanded is the clockwise side).
func Perpendicular(p, q Point2D, length float64, h Handedness) Point2D {
	dx, dy := q.X-p.X, q.Y-p.Y
	norm := math.Sqrt(dx*dx + dy*dy)
	if norm == 0 {
		return p
	}
	ux, uy := dx/norm, dy/norm
	// rotate (ux,uy) by -90 deg for the right-hand side, +90 deg for left
	var rx, ry float64
	if h == RightHanded {
		rx, ry = uy, -ux
	} else {
		rx, ry = -uy, ux
	}
	return Point2D{X: p.X + rx*length, Y: p.Y + ry*length}
}

// SegmentIntersect returns the intersection point of segments (p1,p2) and
// (p3,p4), if one exists within both segments.
func SegmentIntersect(p1, p2, p3, p4 Point2D) (pt Point2D, ok bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y
	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point2D{}, false // parallel or collinear
	}
	dx, dy := p3.X-p1.X, p3.Y-p1.Y
	t := (dx*d2y - dy*d2x) / denom
	u := (dx*d1y - dy*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point2D{}, false
	}
	return Point2D{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}
