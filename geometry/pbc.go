// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// wrap1 maps x into [0,1).
func wrap1(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 { // -1e-17 - floor(-1e-17) rounds to 1
		x = 0
	}

	return x
}

// Wrap maps each fractional component into [0,1).
func Wrap(f r3.Vec) r3.Vec {
	return r3.Vec{X: wrap1(f.X), Y: wrap1(f.Y), Z: wrap1(f.Z)}
}

// minimumImage1 shifts a fractional difference by ±1 when |d| > 0.5.
func minimumImage1(d float64) float64 {
	switch {
	case d > 0.5:
		return d - 1
	case d < -0.5:
		return d + 1
	default:
		return d
	}
}

// MinimumImageDelta returns to − from in fractional coordinates with every
// axis corrected independently to the nearest periodic image, e.g. from 0.02
// to 0.97 gives −0.05 rather than +0.95. Inputs are expected in [0,1).
func MinimumImageDelta(from, to r3.Vec) r3.Vec {
	d := r3.Sub(to, from)

	return r3.Vec{X: minimumImage1(d.X), Y: minimumImage1(d.Y), Z: minimumImage1(d.Z)}
}
