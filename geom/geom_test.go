// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPoint01(tst *testing.T) {

	chk.PrintTitle("Point01: Azimuth and Perpendicular")

	p := NewPoint2D(0, 0)
	q := NewPoint2D(0, 10)
	chk.Float64(tst, "azimuth north", 1e-9, Azimuth(p, q), 0)

	e := Perpendicular(p, q, 5, RightHanded)
	chk.Float64(tst, "perp.x", 1e-9, e.X, 5)
	chk.Float64(tst, "perp.y", 1e-9, e.Y, 0)
}

func TestPolyline01(tst *testing.T) {

	chk.PrintTitle("Polyline01: length and centroid")

	pl := NewPolyline(3)
	pl.Append(NewPoint2D(0, 0))
	pl.Append(NewPoint2D(3, 0))
	pl.Append(NewPoint2D(3, 4))
	chk.Float64(tst, "length", 1e-9, pl.Length(), 7)

	c := pl.Centroid()
	chk.Float64(tst, "centroid.x", 1e-9, c.X, 2)
	chk.Float64(tst, "centroid.y", 1e-9, c.Y, 4.0/3.0)
}

func TestIntersect01(tst *testing.T) {

	chk.PrintTitle("Intersect01: crossing segments")

	p, ok := SegmentIntersect(NewPoint2D(0, 0), NewPoint2D(10, 10), NewPoint2D(0, 10), NewPoint2D(10, 0))
	if !ok {
		tst.Fatal("expected an intersection")
	}
	chk.Float64(tst, "x", 1e-9, p.X, 5)
	chk.Float64(tst, "y", 1e-9, p.Y, 5)

	_, ok = SegmentIntersect(NewPoint2D(0, 0), NewPoint2D(1, 0), NewPoint2D(0, 5), NewPoint2D(1, 5))
	if ok {
		tst.Fatal("parallel segments must not intersect")
	}
}

func TestBounds01(tst *testing.T) {

	chk.PrintTitle("Bounds01: containment and clamping")

	b := Bounds{MinCol: 0, MinRow: 0, MaxCol: 4, MaxRow: 9}
	if !b.Contains(NewPoint2I(4, 9)) {
		tst.Fatal("corner point should be inside")
	}
	if b.Contains(NewPoint2I(5, 0)) {
		tst.Fatal("point past MaxCol should be outside")
	}

	c := b.Clamp(NewPoint2I(-3, 99))
	if c.Col != 0 || c.Row != 9 {
		tst.Fatalf("clamped to (%d,%d), want (0,9)", c.Col, c.Row)
	}
}

func TestSmoothIdentity01(tst *testing.T) {

	chk.PrintTitle("SmoothIdentity01: window=1 is identity")

	pl := NewPolyline(5)
	for i := 0; i < 5; i++ {
		pl.Append(NewPoint2D(float64(i), float64(i*i)))
	}
	out := RunningMeanSmooth(pl, 1)
	for i := 0; i < pl.Len(); i++ {
		chk.Float64(tst, "x", 1e-9, out.At(i).X, pl.At(i).X)
		chk.Float64(tst, "y", 1e-9, out.At(i).Y, pl.At(i).Y)
	}
}

func TestRunningMean01(tst *testing.T) {

	chk.PrintTitle("RunningMean01: interior averaging")

	pl := NewPolyline(5)
	pl.Append(NewPoint2D(0, 0))
	pl.Append(NewPoint2D(1, 0))
	pl.Append(NewPoint2D(2, 0))
	pl.Append(NewPoint2D(3, 0))
	pl.Append(NewPoint2D(4, 0))

	out := RunningMeanSmooth(pl, 3)
	chk.Float64(tst, "smoothed interior x", 1e-9, out.At(2).X, 2)
}
