// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"math/rand"

	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/phot"
)

// sampleHenyeyGreenstein draws a polar scattering angle from the
// Henyey-Greenstein phase function of asymmetry g, by inverting its
// cumulative distribution at a uniform random sample.
func sampleHenyeyGreenstein(rng *rand.Rand, g float64) float64 {
	u := rng.Float64()
	var cosPhi float64
	if g == 0 {
		cosPhi = 2*u - 1
	} else {
		sq := (1 - g*g) / (1 - g + 2*g*u)
		cosPhi = (1 / (2 * g)) * (1 + g*g - sq*sq)
	}
	return math.Acos(cosPhi)
}

// scatter absorbs part of a photon's weight by the medium's albedo, then
// rotates its direction by a Henyey-Greenstein polar angle and a uniformly
// sampled azimuthal angle.
func scatter(rng *rand.Rand, p *phot.Photon, env mopt.Local) {
	p.Weight *= env.Albedo()
	phi := sampleHenyeyGreenstein(rng, env.G)
	theta := rng.Float64() * 2 * math.Pi
	p.Ray.Rotate(phi, theta)
}

// shiftScatter is scatter with a chance of the remaining weight being shifted
// out of the optical band instead of rotated: a Raman or fluorescence event,
// which kills the photon rather than giving it a new direction.
func shiftScatter(rng *rand.Rand, p *phot.Photon, env mopt.Local) {
	p.Weight *= env.Albedo()
	if rng.Float64() <= env.ShiftProb() {
		p.Kill()
		return
	}
	phi := sampleHenyeyGreenstein(rng, env.G)
	theta := rng.Float64() * 2 * math.Pi
	p.Ray.Rotate(phi, theta)
}
