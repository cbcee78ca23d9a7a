// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wave implements the deep-water Airy shoaling/refraction model
// (component D): per-profile propagation, breaking detection, and the
// coastline- and inter-profile interpolation that distributes breaking-wave
// properties to every coast point and every sea cell.
package wave

import (
	"math"

	"github.com/ferid60433/coastalme-sub000/sediment"
)

const (
	g                 = 9.81
	gamma             = 0.78 // breaking criterion H >= gamma*d
	dispersionMaxIter = 100
	dispersionTol     = 1e-9
)

// DeepWater holds the deep-water forcing for one step.
type DeepWater struct {
	H0     float64 // deep-water wave height (m)
	T      float64 // wave period (s)
	Theta0 float64 // deep-water orientation, azimuth degrees
}

// AiryConstants returns the deep-water celerity c0 and wavelength L0 implied
// by the wave period.
func AiryConstants(T float64) (c0, l0 float64) {
	c0 = g * T / (2 * math.Pi)
	l0 = c0 * T
	return
}

// dispersion solves L = L0*tanh(2*pi*d/L0) by fixed-point iteration.
func dispersion(d, l0 float64) float64 {
	l := l0
	for i := 0; i < dispersionMaxIter; i++ {
		next := l0 * math.Tanh(2*math.Pi*d/l)
		if math.Abs(next-l) < dispersionTol {
			l = next
			break
		}
		l = next
	}
	return l
}

// ProfilePoint is one along-profile sample fed to Propagate: the cell it
// corresponds to and its water depth.
type ProfilePoint struct {
	Cell       *sediment.Cell
	WaterDepth float64
}

// Breaking holds the frozen breaking-wave properties determined at the
// first (most-seaward) landward-walked cell where breaking occurs.
type Breaking struct {
	Occurred        bool
	Height          float64
	Angle           float64 // breaking wave direction = coastTangent + alpha, degrees
	Depth           float64
	DistanceInCells int // landward index of the breaking cell, 0 = coast
}

// Propagate walks a profile landward from its seaward end (points[len-1])
// to its coast cell (points[0] is on the coastline and is not computed),
// computing shoaling+refraction wave height/angle at each wet cell, and
// freezing breaking-wave properties from the first cell where breaking
// occurs. coastTangent is the coastline tangent azimuth at the profile's
// coast point; alpha0 is the clipped, high-angle-corrected incidence angle
// relative to the shore normal (see ResolveAlpha0); alpha0 == 0 means the
// waves are oriented offshore and no wave action is computed. Returns the
// breaking result for the coast point.
func Propagate(points []ProfilePoint, dw DeepWater, coastTangent, alpha0 float64) Breaking {
	c0, l0 := AiryConstants(dw.T)
	var br Breaking

	for i := len(points) - 1; i >= 1; i-- {
		p := points[i]
		d := p.WaterDepth

		if !br.Occurred && alpha0 != 0 && d > 0 {
			l := dispersion(d, l0)
			c := c0 * math.Tanh(2*math.Pi*d/l)
			k := 2 * math.Pi / l
			n := 0.5 * (1 + 2*k*d/math.Sinh(2*k*d))
			ks := math.Sqrt(c0 / (2 * n * c))
			alphaRad := math.Asin(clamp(c/c0*math.Sin(alpha0*math.Pi/180), -1, 1))
			alpha := alphaRad * 180 / math.Pi
			kr := math.Sqrt(math.Cos(alpha0*math.Pi/180) / math.Cos(alphaRad))
			h := dw.H0 * ks * kr

			if h >= gamma*d {
				br.Occurred = true
				br.Height = h
				br.Angle = coastTangent + alpha
				br.Depth = d
				br.DistanceInCells = i
			}
		}

		if br.Occurred {
			p.Cell.WaveHeight = br.Height
			p.Cell.WaveOrientation = normalize360(br.Angle)
			p.Cell.InActiveZone = true
		} else {
			// not (yet) in the active zone: carry the deep-water values
			p.Cell.WaveHeight = dw.H0
			p.Cell.WaveOrientation = normalize360(dw.Theta0)
			p.Cell.InActiveZone = false
		}
		// a directly-propagated value counts as one blend sample, so
		// later virtual-profile values average into it instead of
		// replacing it
		p.Cell.WaveBlendCount = 1
	}
	return br
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func normalize360(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// shoreNormalAngle returns the signed angle between the deep-water wave
// direction and the shore normal implied by a flux orientation: positive
// when the waves arrive obliquely from the "previous" side of the coast
// walk, negative from the "next" side, and outside (-90, 90) when the waves
// are oriented offshore.
func shoreNormalAngle(fluxOrientation, theta0 float64) float64 {
	return wrapSigned180(fluxOrientation - theta0 - 90)
}

// ResolveAlpha0 computes the incidence angle between the deep-water wave
// direction and the shore normal at a profile's coast point, clipped into
// (-90, 90) with the Ashton & Murray anti-diffusive high-angle rule: waves
// oriented offshore give 0 (no wave action); a local angle
// beyond 45 degrees with a same-sign updrift neighbour is replaced by the
// updrift angle, or by 45 degrees of the same sign when the updrift angle is
// smaller than that. prevF and nextF are the flux orientations of the
// neighbouring coast points (ignored when the corresponding have* flag is
// false, as at the coast ends).
func ResolveAlpha0(thisF, prevF, nextF, theta0 float64, havePrev, haveNext bool) float64 {
	alpha0 := shoreNormalAngle(thisF, theta0)
	if alpha0 <= -90 || alpha0 >= 90 {
		return 0
	}

	alphaPrev := alpha0
	if havePrev {
		alphaPrev = shoreNormalAngle(prevF, theta0)
	}
	alphaNext := alpha0
	if haveNext {
		alphaNext = shoreNormalAngle(nextF, theta0)
	}

	switch {
	case alphaPrev > 0 && alpha0 > 45:
		if alphaPrev < 45 {
			alpha0 = 45
		} else {
			alpha0 = alphaPrev
		}
	case alphaNext < 0 && alpha0 < -45:
		if alphaNext > -45 {
			alpha0 = -45
		} else {
			alpha0 = alphaNext
		}
	}
	return clamp(alpha0, -90, 90)
}

func wrapSigned180(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}

// Energy returns the per-coast-point wave energy for this step (Walkden &
// Hall 2005, Eq. 4): E = Hb^3.25 * T^0.75 * dtSeconds.
func Energy(breakingHeight, T, dtSeconds float64) float64 {
	if breakingHeight <= 0 {
		return 0
	}
	return math.Pow(breakingHeight, 3.25) * math.Pow(T, 0.75) * dtSeconds
}
