// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Polyline is an ordered sequence of Point2D, used for coastlines, profile
// segments, and any other coast-derived line geometry.
type Polyline struct {
	pts []Point2D
}

// NewPolyline creates an empty Polyline, optionally preallocated.
func NewPolyline(capacity int) *Polyline {
	return &Polyline{pts: make([]Point2D, 0, capacity)}
}

// Append adds a point to the end of the polyline.
func (pl *Polyline) Append(p Point2D) { pl.pts = append(pl.pts, p) }

// Len returns the number of points.
func (pl *Polyline) Len() int { return len(pl.pts) }

// At returns the i-th point.
func (pl *Polyline) At(i int) Point2D { return pl.pts[i] }

// Set replaces the i-th point.
func (pl *Polyline) Set(i int, p Point2D) { pl.pts[i] = p }

// Points returns the backing slice (read-only use expected).
func (pl *Polyline) Points() []Point2D { return pl.pts }

// Length returns the Euclidean sum of segment lengths.
func (pl *Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl.pts); i++ {
		total += pl.pts[i-1].Dist(pl.pts[i])
	}
	return total
}

// Centroid returns the arithmetic mean of all points. For a single-point
// polyline it returns that point.
func (pl *Polyline) Centroid() Point2D {
	if len(pl.pts) == 0 {
		return Point2D{}
	}
	var sx, sy float64
	for _, p := range pl.pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pl.pts))
	return Point2D{X: sx / n, Y: sy / n}
}

// Intersects reports whether pl and other share any crossing segment, and
// returns the first such point found.
func (pl *Polyline) Intersects(other *Polyline) (pt Point2D, ok bool) {
	for i := 1; i < len(pl.pts); i++ {
		for j := 1; j < len(other.pts); j++ {
			if p, found := SegmentIntersect(pl.pts[i-1], pl.pts[i], other.pts[j-1], other.pts[j]); found {
				return p, true
			}
		}
	}
	return Point2D{}, false
}

// Clone returns a deep copy.
func (pl *Polyline) Clone() *Polyline {
	cp := make([]Point2D, len(pl.pts))
	copy(cp, pl.pts)
	return &Polyline{pts: cp}
}
