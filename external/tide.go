// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

// SliceTideSeries is a concrete TideSeries backed by an in-memory slice of
// offsets, wrapping modulo its length. A zero-length series
// always returns an offset of 0.
type SliceTideSeries []float64

// Offset implements TideSeries.
func (s SliceTideSeries) Offset(step int) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[step%len(s)]
}
