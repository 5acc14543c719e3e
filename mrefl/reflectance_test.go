// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrefl

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
)

func TestSpecularReflectPerfectReflector(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	incidentPos := geom.NewPoint3(1, 0, 1)
	incidentDir := geom.NewDir3(1, 0, -1)
	norm := geom.NewDir3(0, 0, 1)
	side := geom.NewSide(incidentDir, norm)

	model := Specular{Albedo: 1.0}
	for i := 0; i < 100; i++ {
		ray, ok := model.Reflect(rng, incidentPos, incidentDir, side)
		if !ok {
			t.Fatal("perfect reflector must never kill")
		}
		expected := geom.NewDir3(1, 0, 1)
		chk.Float64(t, "dot", 1e-9, ray.Dir().Dot(expected), 1.0)
	}
}

func TestLambertianReflectStaysInHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	incidentPos := geom.NewPoint3(1, 1, 0)
	incidentDir := geom.NewDir3(-1, -1, 0)
	norm := geom.NewDir3(0, 0, 1)
	side := geom.NewSide(geom.NewDir3(-1, -1, -1), norm)

	model := Lambertian{Albedo: 1.0}
	for i := 0; i < 1000; i++ {
		ray, ok := model.Reflect(rng, incidentPos, incidentDir, side)
		if !ok {
			t.Fatal("albedo 1.0 must never kill")
		}
		if ray.Dir().Dot(norm) <= 0 {
			t.Fatalf("lambertian reflection left the hemisphere: %v", ray.Dir())
		}
	}
}

func TestLambertianAlbedoControlsKillRate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	incidentPos := geom.NewPoint3(1, 1, 0)
	incidentDir := geom.NewDir3(-1, -1, 0)
	norm := geom.NewDir3(0, 0, 1)
	side := geom.NewSide(geom.NewDir3(1, 1, 0), norm)

	model := Lambertian{Albedo: 0.5}
	n := 100000
	killed := 0
	for i := 0; i < n; i++ {
		if _, ok := model.Reflect(rng, incidentPos, incidentDir, side); !ok {
			killed++
		}
	}
	frac := float64(killed) / float64(n)
	if math.Abs(frac-0.5) > 0.01 {
		t.Fatalf("expected roughly half killed, got fraction %v", frac)
	}
}

func TestReflectAboutMirrorsAxisAligned(t *testing.T) {
	dir := geom.NewDir3(1, 0, -1)
	norm := geom.NewDir3(0, 0, 1)
	out := ReflectAbout(dir, norm)
	expected := geom.NewDir3(1, 0, 1)
	chk.Float64(t, "dot", 1e-9, out.Dot(expected), 1.0)
}
