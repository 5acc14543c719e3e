// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the engine's analytic validation scenarios: small,
// closed-form configurations whose expected outcome can be checked against a
// live simulation run within a statistical or numerical tolerance.
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/geom/octree"
	"github.com/cpmech/mcrt/mlight"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/sim"
)

// IsotropicVacuum is a point emitter at the origin of a vacuum medium (no
// scattering, absorption or shift) inside a Kill boundary. Every photon must
// leave the domain unscattered: no energy should ever reach an Absorption
// volume, and the Emission volume must record exactly the light's total
// power, since every photon deposits its full weight there at birth
// regardless of its eventual path.
type IsotropicVacuum struct {
	Power     float64
	NumPhot   int
	HalfWidth float64
}

// Init sets the scenario up with its default half-width of 10.
func (o *IsotropicVacuum) Init(power float64, numPhot int) {
	o.Power = power
	o.NumPhot = numPhot
	o.HalfWidth = 10.0
}

// Build assembles the input and a template accumulator with Emission and
// Absorption volumes covering the whole domain.
func (o IsotropicVacuum) Build() (*sim.Input, *out.Output) {
	h := o.HalfWidth
	box := geom.NewCube(geom.NewPoint3(-h, -h, -h), geom.NewPoint3(h, h, h))
	bound := boundary.NewKill(box)
	tree := &octree.Tree{Boundary: box}

	mat := mopt.NewConstant(mopt.Local{N: 1.0})
	emitter := mlight.Points{Positions: []geom.Point3{geom.NewPoint3(0, 0, 0)}}
	light := mlight.New(o.Power, emitter, mlight.PointSpectrum{Wavelength: 500e-9}, mat)

	emission := out.NewVolume("emission", out.Emission, box.Mins(), box.Maxs(), 1, 1, 1)
	absorption := out.NewVolume("absorption", out.Absorption, box.Mins(), box.Maxs(), 1, 1, 1)
	template := &out.Output{Vol: []*out.Volume{emission, absorption}}

	settings := sim.NewSettings(o.NumPhot, 64, 1e-9, 10000, 0.0, 5)
	return sim.NewInput(tree, bound, light, nil, settings), template
}

// Run drives the scenario to completion with the pure-elastic kernel.
func (o IsotropicVacuum) Run() *out.Output {
	input, template := o.Build()
	return sim.Run(input, sim.Standard{}, template, nil)
}

// CheckNoAbsorptionAndFullEmission asserts the invariant: zero absorption,
// and an emission total equal to the light's power.
func (o IsotropicVacuum) CheckNoAbsorptionAndFullEmission(tst *testing.T, result *out.Output, tol float64) {
	absTotal := 0.0
	for _, v := range result.VolumesByParam(out.Absorption) {
		for _, val := range v.Data {
			absTotal += val
		}
	}
	chk.Float64(tst, "absorption (vacuum)", tol, absTotal, 0.0)

	emTotal := 0.0
	for _, v := range result.VolumesByParam(out.Emission) {
		for _, val := range v.Data {
			emTotal += val
		}
	}
	chk.Float64(tst, "emission == power", tol, emTotal, o.Power)
}
