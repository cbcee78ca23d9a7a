// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// RunningMeanSmooth returns a new Polyline smoothed by a running mean of
// window w (odd). Points within half a window of either end are not
// averaged: they are replaced by a linear extension of the first/last
// smoothed interior points. A polyline no longer than the window is
// returned unchanged.
func RunningMeanSmooth(pl *Polyline, w int) *Polyline {
	if w%2 == 0 {
		chk.Panic("RunningMeanSmooth: window must be odd, got %d", w)
	}
	n := pl.Len()
	out := NewPolyline(n)
	if n == 0 {
		return out
	}
	half := w / 2
	for i := 0; i < n; i++ {
		out.Append(pl.At(i))
	}
	if n <= w {
		return out
	}
	for i := half; i < n-half; i++ {
		var sx, sy float64
		for k := -half; k <= half; k++ {
			p := pl.At(i + k)
			sx += p.X
			sy += p.Y
		}
		out.Set(i, Point2D{X: sx / float64(w), Y: sy / float64(w)})
	}
	// linear extension of the endpoints from the first/last smoothed interior points
	if n > 2*half {
		extendEnd(out, half, -1)
		extendEnd(out, n-1-half, 1)
	}
	return out
}

// extendEnd linearly extends the smoothed interior value at anchor towards
// the polyline end in direction dir (-1 towards index 0, +1 towards the last
// index), overwriting the unsmoothed endpoint run with a linear ramp.
func extendEnd(pl *Polyline, anchor, dir int) {
	if anchor-dir < 0 || anchor-dir >= pl.Len() {
		return
	}
	p0 := pl.At(anchor)
	p1 := pl.At(anchor - dir) // the next smoothed point inwards
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	i := anchor
	step := 0
	for {
		i += dir
		if i < 0 || i >= pl.Len() {
			break
		}
		step++
		pl.Set(i, Point2D{X: p0.X - dx*float64(step), Y: p0.Y - dy*float64(step)})
	}
}

// SavitzkyGolayCoeffs computes the symmetric Savitzky-Golay smoothing
// coefficients for window w (odd) and polynomial order p <= 6, solving the
// least-squares polynomial fit via a Vandermonde normal-equation solve.
func SavitzkyGolayCoeffs(w, p int) []float64 {
	if w%2 == 0 {
		chk.Panic("SavitzkyGolayCoeffs: window must be odd, got %d", w)
	}
	if p > 6 {
		chk.Panic("SavitzkyGolayCoeffs: polynomial order must be <= 6, got %d", p)
	}
	half := w / 2
	// Vandermonde matrix A[i][j] = (i-half)^j, i=0..w-1, j=0..p
	a := mat.NewDense(w, p+1, nil)
	for i := 0; i < w; i++ {
		x := float64(i - half)
		v := 1.0
		for j := 0; j <= p; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	var ata mat.Dense
	ata.Mul(a.T(), a)
	var ataInv mat.Dense
	if err := ataInv.Inverse(&ata); err != nil {
		chk.Panic("SavitzkyGolayCoeffs: singular normal matrix: %v", err)
	}
	var c mat.Dense
	c.Mul(&ataInv, a.T())
	// coefficients for the center point estimate are row "half" of A * c^T,
	// i.e. column half of (A * C)^T == row half of C applied to unit vector;
	// the smoothing weight vector is C^T's column for x=0 which is row 0 of
	// ataInv*A^T evaluated, equivalently: coeffs[i] = c[0][i]
	coeffs := make([]float64, w)
	for i := 0; i < w; i++ {
		coeffs[i] = c.At(0, i)
	}
	return coeffs
}

// SavitzkyGolaySmooth returns a new Polyline smoothed with precomputed
// Savitzky-Golay coefficients (see SavitzkyGolayCoeffs). Points within half
// the window of either end get the same linear extension as in
// RunningMeanSmooth.
func SavitzkyGolaySmooth(pl *Polyline, coeffs []float64) *Polyline {
	w := len(coeffs)
	half := w / 2
	n := pl.Len()
	out := NewPolyline(n)
	for i := 0; i < n; i++ {
		out.Append(pl.At(i))
	}
	if n <= w {
		return out
	}
	for i := half; i < n-half; i++ {
		var sx, sy float64
		for k := 0; k < w; k++ {
			p := pl.At(i - half + k)
			sx += coeffs[k] * p.X
			sy += coeffs[k] * p.Y
		}
		out.Set(i, Point2D{X: sx, Y: sy})
	}
	extendEnd(out, half, -1)
	extendEnd(out, n-1-half, 1)
	return out
}
