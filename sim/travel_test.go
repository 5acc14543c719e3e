// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/phot"
)

func TestTravelDepositsIntoEachVolumeKind(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(1, 0, 0))
	p := phot.New(ray, 500e-9, 2.0)
	env := mopt.Local{N: 1.5, MuA: 0.1, MuShift: 0.2}

	data := &out.Output{Vol: []*out.Volume{
		out.NewVolume("energy", out.Energy, geom.NewPoint3(-1, -1, -1), geom.NewPoint3(1, 1, 1), 2, 2, 2),
		out.NewVolume("absorption", out.Absorption, geom.NewPoint3(-1, -1, -1), geom.NewPoint3(1, 1, 1), 2, 2, 2),
		out.NewVolume("shift", out.Shift, geom.NewPoint3(-1, -1, -1), geom.NewPoint3(1, 1, 1), 2, 2, 2),
	}}

	travel(data, &p, env, 1.0)

	wpd := 1.0 * 2.0 * 1.0
	wantEnergy := wpd * 1.5 / SpeedOfLight
	wantAbsorption := wpd * 0.1
	wantShift := wpd * 0.2

	total := func(v *out.Volume) float64 {
		sum := 0.0
		for i := 0; i < len(v.Data); i++ {
			sum += v.Data[i]
		}
		return sum
	}

	chk.Float64(t, "energy", 1e-12, total(data.Vol[0]), wantEnergy)
	chk.Float64(t, "absorption", 1e-12, total(data.Vol[1]), wantAbsorption)
	chk.Float64(t, "shift", 1e-12, total(data.Vol[2]), wantShift)
}

func TestTravelMovesTheRayForward(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(1, 0, 0))
	p := phot.New(ray, 500e-9, 1.0)
	env := mopt.Local{N: 1.0}
	data := &out.Output{}

	travel(data, &p, env, 2.5)

	chk.Float64(t, "x", 1e-9, p.Ray.Pos().X(), 2.5)
}

func TestTravelAccumulatesFlightTimeWhenResolved(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(1, 0, 0))
	p := phot.New(ray, 500e-9, 1.0).WithTime()
	env := mopt.Local{N: SpeedOfLight}
	data := &out.Output{}

	travel(data, &p, env, 1.0)

	chk.Float64(t, "tof", 1e-6, *p.TOF, 1.0)
}
