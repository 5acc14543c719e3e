// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/phot"
)

func TestScatterAppliesAlbedo(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	env := mopt.Local{N: 1.0, MuS: 6.0, MuA: 2.0, G: 0.0}
	rng := rand.New(rand.NewSource(1))

	scatter(rng, &p, env)

	chk.Float64(t, "weight", 1e-12, p.Weight, 0.75)
}

func TestScatterIsotropicStaysUnitLength(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	env := mopt.Local{N: 1.0, MuS: 1.0, G: 0.0}
	rng := rand.New(rand.NewSource(7))

	scatter(rng, &p, env)

	d := p.Ray.Dir()
	length := math.Sqrt(d.X()*d.X() + d.Y()*d.Y() + d.Z()*d.Z())
	chk.Float64(t, "length", 1e-9, length, 1.0)
}

func TestShiftScatterAlwaysKillsWhenShiftProbIsOne(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	env := mopt.Local{N: 1.0, MuS: 0.0, MuShift: 1.0}
	rng := rand.New(rand.NewSource(1))

	shiftScatter(rng, &p, env)

	if p.IsAlive() {
		t.Fatal("expected a certain shift event to kill the photon")
	}
}

func TestShiftScatterScattersWhenShiftProbIsZero(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	env := mopt.Local{N: 1.0, MuS: 1.0, MuShift: 0.0, G: 0.0}
	rng := rand.New(rand.NewSource(1))

	shiftScatter(rng, &p, env)

	if !p.IsAlive() {
		t.Fatal("expected scattering, not a shift, with zero shift probability")
	}
}

func TestSampleHenyeyGreensteinIsotropicIsUniformInCosine(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		phi := sampleHenyeyGreenstein(rng, 0.0)
		sum += math.Cos(phi)
	}
	mean := sum / n
	if math.Abs(mean) > 0.02 {
		t.Fatalf("expected isotropic scattering to average near zero cosine, got %v", mean)
	}
}

func TestSampleHenyeyGreensteinForwardPeakedSkewsPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		phi := sampleHenyeyGreenstein(rng, 0.9)
		sum += math.Cos(phi)
	}
	mean := sum / n
	if mean < 0.5 {
		t.Fatalf("expected a strongly forward-peaked phase function, got mean cosine %v", mean)
	}
}
