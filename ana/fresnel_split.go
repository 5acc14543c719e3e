// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/attr"
	"github.com/cpmech/mcrt/geom"
)

// FresnelSplit is a flat dielectric interface between two refractive
// indices, struck at normal incidence. Its closed-form reflection
// probability is the classic Fresnel formula ((n2-n1)/(n2+n1))^2, which a
// large sample of independently drawn crossings must match within
// statistical error.
type FresnelSplit struct {
	N1, N2 float64
}

// Init sets the two refractive indices.
func (o *FresnelSplit) Init(n1, n2 float64) {
	o.N1, o.N2 = n1, n2
}

// ExpectedReflectProb is the closed-form normal-incidence Fresnel
// reflectance.
func (o FresnelSplit) ExpectedReflectProb() float64 {
	r := (o.N2 - o.N1) / (o.N2 + o.N1)
	return r * r
}

// SampleReflectFrequency draws numSamples independent normal-incidence
// crossings and returns the fraction classified as reflected.
func (o FresnelSplit) SampleReflectFrequency(rng *rand.Rand, numSamples int) float64 {
	inc := geom.NewDir3(0, 0, 1)
	norm := geom.NewDir3(0, 0, -1) // outward normal opposing the incoming ray

	crossing := attr.NewCrossing(inc, norm, o.N1, o.N2)

	var reflected int
	for i := 0; i < numSamples; i++ {
		if rng.Float64() <= crossing.RefProb() {
			reflected++
		}
	}
	return float64(reflected) / float64(numSamples)
}

// CheckReflectProbMatchesFresnelFormula asserts the sampled frequency
// matches the closed-form reflectance within tol.
func (o FresnelSplit) CheckReflectProbMatchesFresnelFormula(tst *testing.T, rng *rand.Rand, numSamples int, tol float64) {
	freq := o.SampleReflectFrequency(rng, numSamples)
	chk.Float64(tst, "Fresnel reflectance", tol, freq, o.ExpectedReflectProb())
}
