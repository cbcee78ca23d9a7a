// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

// WaveForcing supplies the deep-water wave forcing for a step: height H0
// (m), period T (s), and orientation theta0 (azimuth degrees, the direction
// waves move toward). A nil WaveForcing means the driver uses the constant
// values from its configuration.
type WaveForcing interface {
	Deepwater(step int) (h0, t, theta0 float64)
}

// ConstantForcing is a WaveForcing returning the same deep-water values
// every step.
type ConstantForcing struct {
	H0, T, Theta0 float64
}

// Deepwater implements WaveForcing.
func (f ConstantForcing) Deepwater(int) (float64, float64, float64) {
	return f.H0, f.T, f.Theta0
}

// ForcingSample is one step's deep-water forcing triple.
type ForcingSample struct {
	H0, T, Theta0 float64
}

// SliceForcing is a WaveForcing backed by an in-memory sequence of samples,
// wrapping modulo its length like a tide series. A zero-length sequence
// returns zeros.
type SliceForcing []ForcingSample

// Deepwater implements WaveForcing.
func (s SliceForcing) Deepwater(step int) (float64, float64, float64) {
	if len(s) == 0 {
		return 0, 0, 0
	}
	f := s[step%len(s)]
	return f.H0, f.T, f.Theta0
}
