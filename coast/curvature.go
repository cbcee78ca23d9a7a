// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coast

import (
	"math"

	"github.com/ferid60433/coastalme-sub000/geom"
)

// Curvature computes per-point curvature using the Hermann-Klette (HK2003)
// discrete estimator over the given interval: at each interior point i it
// compares the bearing change between the segments (P[i-m],P[i]) and
// (P[i],P[i+m]) against the chord length, clamped at the ends to the
// sampling interval available; the two endpoints receive the mean
// curvature of all interior points.
func Curvature(pl *geom.Polyline, interval int) []float64 {
	n := pl.Len()
	out := make([]float64, n)
	if n < 3 {
		return out
	}
	var sum float64
	var count int
	for i := 0; i < n; i++ {
		lo, hi := i-interval, i+interval
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		if lo == i || hi == i {
			continue
		}
		p0, p1, p2 := pl.At(lo), pl.At(i), pl.At(hi)
		b1 := geom.Azimuth(p0, p1)
		b2 := geom.Azimuth(p1, p2)
		dTheta := signedAngleDiff(b1, b2) * math.Pi / 180
		chord := p0.Dist(p2)
		if chord == 0 {
			continue
		}
		k := 2 * math.Sin(dTheta/2) / chord
		out[i] = k
		sum += k
		count++
	}
	if count > 0 {
		mean := sum / float64(count)
		out[0] = mean
		out[n-1] = mean
	}
	return out
}

func signedAngleDiff(a, b float64) float64 {
	d := b - a
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

// FluxOrientation computes per-point flux orientation as the azimuth of the
// segment between the points immediately before and after, clamped to
// one-sided differences at the ends.
func FluxOrientation(pl *geom.Polyline) []float64 {
	n := pl.Len()
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	for i := 0; i < n; i++ {
		switch {
		case n == 1:
			out[i] = 0
		case i == 0:
			out[i] = geom.Azimuth(pl.At(0), pl.At(1))
		case i == n-1:
			out[i] = geom.Azimuth(pl.At(n-2), pl.At(n-1))
		default:
			out[i] = geom.Azimuth(pl.At(i-1), pl.At(i+1))
		}
	}
	return out
}
