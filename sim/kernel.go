// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mcrt/attr"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/phot"
)

// Kernel drives a single photon through its event loop to termination
// (death by kill, roulette, loop limit, or escaping the boundary),
// depositing into data as it travels. The three variants share the event
// classification and travel machinery; they differ in how a scattering
// event is resolved and, for Fluorescence, in how the shift coefficient is
// derived at each position.
type Kernel interface {
	Run(input *Input, data *out.Output, rng *rand.Rand, p *phot.Photon)
}

// Standard is a purely elastic engine: every scattering event rotates the
// photon's direction with no chance of a wavelength shift.
type Standard struct{}

// Run implements Kernel.
func (Standard) Run(input *Input, data *out.Output, rng *rand.Rand, p *phot.Photon) {
	local := input.Light.Mat.At(p.Wavelength)
	runEventLoop(input, data, rng, p, &local, identityEnv, scatter)
}

// Raman is Standard's counterpart where a scattering event carries a chance
// of an inelastic shift that removes the photon from the optical band. Its
// shift coefficient comes directly from the sampled Material, unlike
// Fluorescence's externally supplied concentration field.
type Raman struct{}

// Run implements Kernel.
func (Raman) Run(input *Input, data *out.Output, rng *rand.Rand, p *phot.Photon) {
	local := input.Light.Mat.At(p.Wavelength)
	runEventLoop(input, data, rng, p, &local, identityEnv, shiftScatter)
}

// Fluorescence is Raman's counterpart where the shift coefficient at a point
// is not carried by the sampled Material but looked up per-voxel from a
// separate concentration field and weighted by an emission spectrum — a
// fluorophore whose concentration varies spatially, independent of the host
// medium's own optical properties.
type Fluorescence struct {
	Concentration *out.Volume
	Spectrum      *mopt.Material
}

// Run implements Kernel.
func (f Fluorescence) Run(input *Input, data *out.Output, rng *rand.Rand, p *phot.Photon) {
	local := input.Light.Mat.At(p.Wavelength)
	muShiftPerUnitConc := f.Spectrum.At(p.Wavelength).MuShift

	deriveEnv := func(base mopt.Local, pos geom.Point3) mopt.Local {
		env := base
		if idx, ok := f.Concentration.Index(pos); ok {
			env.MuShift = muShiftPerUnitConc*f.Concentration.Data[idx] + base.MuShift
		}
		return env
	}
	runEventLoop(input, data, rng, p, &local, deriveEnv, shiftScatter)
}

// identityEnv is the deriveEnv used by kernels whose coefficients depend
// only on the currently sampled material, not on the photon's position.
func identityEnv(base mopt.Local, _ geom.Point3) mopt.Local { return base }

// runEventLoop is the shared photon lifetime: classify the next event,
// travel to it, resolve it, repeat until the photon dies or leaves the
// boundary. base is the mutable "current material" environment, updated in
// place by interface crossings at surface hits; deriveEnv additionally
// folds in any position-dependent coefficients (Fluorescence's
// concentration field) on top of base for each iteration.
func runEventLoop(input *Input, data *out.Output, rng *rand.Rand, p *phot.Photon, base *mopt.Local, deriveEnv func(mopt.Local, geom.Point3) mopt.Local, scatterFn func(*rand.Rand, *phot.Photon, mopt.Local)) {
	data.DepositEmission(p.Ray.Pos(), p.Power*p.Weight)

	sett := input.Settings
	rouletteSurviveProb := sett.RouletteSurviveProb()

	var numLoops uint64
	for input.Bound.Box.Contains(p.Ray.Pos()) {
		if numLoops >= sett.LoopLimit {
			io.Pf("[WARN] terminating photon: loop limit reached\n")
			p.Kill()
			break
		}
		numLoops++

		if p.Weight < sett.MinWeight {
			if rng.Float64() > rouletteSurviveProb {
				p.Kill()
				break
			}
			p.Weight *= float64(sett.RouletteBarrels)
		}

		env := deriveEnv(*base, p.Ray.Pos())

		voxelDist := data.DistToNearestVoxelExit(&p.Ray)
		scatDist := -math.Log(rng.Float64()) / env.InteractionCoeff()

		rayCopy := p.Ray
		surfHit, hasSurfHit := input.Tree.Scan(&rayCopy, sett.BumpDist, math.Min(voxelDist, scatDist))
		boundaryHit, hasBoundaryHit := input.Bound.DistanceToFace(&p.Ray)

		event := NewEvent(voxelDist, scatDist, surfHit, hasSurfHit, boundaryHit, hasBoundaryHit, sett.BumpDist)

		switch event.Kind {
		case VoxelEvent:
			travel(data, p, env, event.Dist+sett.BumpDist)
		case ScatteringEvent:
			travel(data, p, env, event.Dist)
			scatterFn(rng, p, env)
		case SurfaceEvent:
			travel(data, p, env, event.Surface.Dist)
			attr.Apply(rng, input.Attrs[event.Surface.AttrRef], attr.Hit{Dist: event.Surface.Dist, Side: event.Surface.Side}, p, base, data)
			travel(data, p, env, sett.BumpDist)
		case BoundaryEvent:
			travel(data, p, env, event.Boundary.Dist)
			input.Bound.Apply(rng, event.Boundary, p)
			if p.IsAlive() {
				travel(data, p, env, sett.BumpDist)
			}
		}

		if !p.IsAlive() {
			break
		}
	}
}
