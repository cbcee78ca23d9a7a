// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestTideSeriesWraps01(tst *testing.T) {

	chk.PrintTitle("TideSeriesWraps01: offsets wrap modulo the series length")

	tide := SliceTideSeries{0.1, 0.2, 0.3}
	chk.Float64(tst, "step 0", 1e-12, tide.Offset(0), 0.1)
	chk.Float64(tst, "step 4 wraps to 1", 1e-12, tide.Offset(4), 0.2)

	var empty SliceTideSeries
	chk.Float64(tst, "empty series is flat", 1e-12, empty.Offset(7), 0)
}

func TestSliceForcingWraps01(tst *testing.T) {

	chk.PrintTitle("SliceForcingWraps01: deep-water forcing wraps modulo the sample count")

	f := SliceForcing{
		{H0: 1, T: 8, Theta0: 90},
		{H0: 2, T: 9, Theta0: 95},
	}
	h0, T, theta0 := f.Deepwater(3)
	chk.Float64(tst, "h0", 1e-12, h0, 2)
	chk.Float64(tst, "t", 1e-12, T, 9)
	chk.Float64(tst, "theta0", 1e-12, theta0, 95)
}
