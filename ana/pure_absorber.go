// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

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

// PureAbsorber is an isotropic point source inside a medium with a large
// absorption coefficient and no scattering. Every photon is extinguished
// before it can reach the boundary, so the total energy deposited across
// Absorption volumes must equal the light's total power, up to the
// statistical noise of the sampled path lengths.
type PureAbsorber struct {
	Power     float64
	NumPhot   int
	MuA       float64
	HalfWidth float64
}

// Init sets the scenario up with its default half-width of 10.
func (o *PureAbsorber) Init(power float64, numPhot int, muA float64) {
	o.Power = power
	o.NumPhot = numPhot
	o.MuA = muA
	o.HalfWidth = 10.0
}

// Build assembles the input and an Absorption-only template.
func (o PureAbsorber) Build() (*sim.Input, *out.Output) {
	h := o.HalfWidth
	box := geom.NewCube(geom.NewPoint3(-h, -h, -h), geom.NewPoint3(h, h, h))
	bound := boundary.NewKill(box)
	tree := &octree.Tree{Boundary: box}

	mat := mopt.NewConstant(mopt.Local{N: 1.0, MuA: o.MuA})
	emitter := mlight.Points{Positions: []geom.Point3{geom.NewPoint3(0, 0, 0)}}
	light := mlight.New(o.Power, emitter, mlight.PointSpectrum{Wavelength: 500e-9}, mat)

	absorption := out.NewVolume("absorption", out.Absorption, box.Mins(), box.Maxs(), 1, 1, 1)
	template := &out.Output{Vol: []*out.Volume{absorption}}

	settings := sim.NewSettings(o.NumPhot, 64, 1e-9, 10000, 1e-4, 5)
	return sim.NewInput(tree, bound, light, nil, settings), template
}

// Run drives the scenario to completion with the pure-elastic kernel; no
// scattering ever occurs since MuS is zero, so the kernel choice does not
// affect the result.
func (o PureAbsorber) Run() *out.Output {
	input, template := o.Build()
	return sim.Run(input, sim.Standard{}, template, nil)
}

// CheckFullAbsorption asserts total absorbed energy equals the emitted
// power, within the statistical tolerance tol.
func (o PureAbsorber) CheckFullAbsorption(tst *testing.T, result *out.Output, tol float64) {
	total := 0.0
	for _, v := range result.VolumesByParam(out.Absorption) {
		for _, val := range v.Data {
			total += val
		}
	}
	chk.Float64(tst, "absorption == power", tol, total, o.Power)
}
