// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sediment implements the per-cell sediment stack and landform tag
// (component B): SedimentLayer, CellLayer, the Landform tagged variant, and
// the Cell that owns them.
package sediment

import "github.com/cpmech/gosl/chk"

// Fraction identifies one of the three grain-size classes tracked per
// sediment layer.
type Fraction int

const (
	Fine Fraction = iota
	Sand
	Coarse
)

// SedimentLayer holds the six depth-equivalents (metres averaged over a
// whole cell footprint) for one stratum: {fine, sand, coarse} present depth,
// and the matching depth lost to notch incision for each.
type SedimentLayer struct {
	present [3]float64
	lost    [3]float64
}

// Present returns the present depth of fraction f.
func (l *SedimentLayer) Present(f Fraction) float64 { return l.present[f] }

// SetPresent sets the present depth of fraction f, panicking if negative or
// below the already-lost depth (lost <= present must hold at all times).
func (l *SedimentLayer) SetPresent(f Fraction, depth float64) {
	if depth < 0 {
		chk.Panic("SedimentLayer.SetPresent: negative depth %g for fraction %d", depth, f)
	}
	if depth < l.lost[f] {
		chk.Panic("SedimentLayer.SetPresent: present %g < lost %g for fraction %d", depth, l.lost[f], f)
	}
	l.present[f] = depth
}

// AddPresent adds delta (may be negative) to the present depth of fraction f.
func (l *SedimentLayer) AddPresent(f Fraction, delta float64) {
	l.SetPresent(f, l.present[f]+delta)
}

// NotchLost returns the depth of fraction f lost to notch incision so far.
func (l *SedimentLayer) NotchLost(f Fraction) float64 { return l.lost[f] }

// IncrNotchLost increases the notch-lost depth of fraction f by delta,
// clamped so it never exceeds the present depth.
func (l *SedimentLayer) IncrNotchLost(f Fraction, delta float64) {
	if delta < 0 {
		chk.Panic("SedimentLayer.IncrNotchLost: negative delta %g", delta)
	}
	nl := l.lost[f] + delta
	if nl > l.present[f] {
		nl = l.present[f]
	}
	l.lost[f] = nl
}

// RemoveCliff subtracts each fraction's notch-lost depth from its present
// depth and zeroes the notch-lost counters. Invoked exactly once per cell
// when the cliff landform transitions to Sea.
func (l *SedimentLayer) RemoveCliff() {
	for f := Fine; f <= Coarse; f++ {
		l.present[f] -= l.lost[f]
		l.lost[f] = 0
	}
}

// TotalPresent returns the sum of the three present depths.
func (l *SedimentLayer) TotalPresent() float64 {
	return l.present[Fine] + l.present[Sand] + l.present[Coarse]
}

// TotalNotchLost returns the sum of the three notch-lost depths.
func (l *SedimentLayer) TotalNotchLost() float64 {
	return l.lost[Fine] + l.lost[Sand] + l.lost[Coarse]
}
