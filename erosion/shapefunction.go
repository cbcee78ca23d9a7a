// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package erosion implements the shore-platform erosion model (component
// G): the erosion-potential shape function, per-profile and inter-profile
// potential erosion, and sediment-availability-constrained actual erosion.
package erosion

import (
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/ferid60433/coastalme-sub000/errs"
)

const sampleStep = 0.001

// ControlPoint is one user-supplied (d/Db, epsilon, epsilon') tuple
// defining the erosion-potential shape function.
type ControlPoint struct {
	DOverDB float64
	Eps     float64
	DEps    float64
}

// ShapeFunction is the precomputed erosion-potential lookup: a dense,
// uniformly-sampled table built once at init by evaluating the cubic
// Hermite spline through the control points (using their supplied
// derivatives explicitly), then queried at runtime by linear interpolation
// between bracketing samples via gonum.org/v1/gonum/interp.PiecewiseLinear.
type ShapeFunction struct {
	maxDOverDB float64
	lut        interp.PiecewiseLinear
	xs, ys     []float64
}

// NewShapeFunction builds a ShapeFunction from control points monotone in
// d/Db. It samples the Hermite spline every 0.001 from 0 upward, running a
// tenth beyond the last control point so the spline's boundary segment
// decides where the function crosses to positive. The first sample where
// eps > 0 is cut off and set to exactly 0; its d/Db becomes maxDOverDB,
// beyond which eps == 0. Fails with ShapeFunctionFile if eps never crosses
// to positive in the sampled range (the function would then be unbounded).
func NewShapeFunction(points []ControlPoint) (*ShapeFunction, error) {
	if len(points) < 2 {
		return nil, errs.New(errs.ShapeFunctionFile, "shape function needs at least two control points")
	}
	cps := append([]ControlPoint(nil), points...)
	sort.Slice(cps, func(i, j int) bool { return cps[i].DOverDB < cps[j].DOverDB })

	last := cps[len(cps)-1].DOverDB * 1.1
	var xs, ys []float64
	for x := 0.0; x <= last+1e-12; x += sampleStep {
		xs = append(xs, x)
		ys = append(ys, hermiteEval(cps, x))
	}

	cut := -1
	for i := 1; i < len(ys); i++ {
		if ys[i] > 0 {
			cut = i
			break
		}
	}
	if cut < 0 {
		return nil, errs.New(errs.ShapeFunctionFile, "erosion-potential function never crosses to positive in the tabulated range")
	}
	xs, ys = xs[:cut+1], ys[:cut+1]
	ys[cut] = 0

	sf := &ShapeFunction{maxDOverDB: xs[cut], xs: xs, ys: ys}
	if err := sf.lut.Fit(xs, ys); err != nil {
		return nil, errs.Wrap(errs.ShapeFunctionFile, err, "failed to build erosion-potential lookup table")
	}
	return sf, nil
}

// hermiteEval evaluates the cubic Hermite spline defined by cps at x, using
// the supplied first derivatives as segment tangents. Outside the tabulated
// range the nearest boundary segment is extrapolated.
func hermiteEval(cps []ControlPoint, x float64) float64 {
	n := len(cps)
	i := 0
	for i < n-2 && cps[i+1].DOverDB < x {
		i++
	}
	a, b := cps[i], cps[i+1]
	h := b.DOverDB - a.DOverDB
	t := (x - a.DOverDB) / h
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*a.Eps + h10*h*a.DEps + h01*b.Eps + h11*h*b.DEps
}

// Eval returns the erosion potential at an arbitrary d/Db, exactly 0 if it
// exceeds maxDOverDB.
func (sf *ShapeFunction) Eval(dOverDB float64) float64 {
	if dOverDB <= 0 {
		return sf.ys[0]
	}
	if dOverDB > sf.maxDOverDB {
		return 0
	}
	return sf.lut.Predict(dOverDB)
}

// MaxDOverDB returns the d/Db at which the tabulated function is cut off to
// 0 (the first sample where it would turn positive); Eval returns 0 beyond it.
func (sf *ShapeFunction) MaxDOverDB() float64 { return sf.maxDOverDB }
