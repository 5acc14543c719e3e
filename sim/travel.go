// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/phot"
)

// SpeedOfLight is the vacuum speed of light, in metres per second.
const SpeedOfLight = 299792458.0

// travel advances a photon forward by dist through env, depositing the
// step's energy, absorption and shift contributions at its starting
// position before moving the ray.
func travel(data *out.Output, p *phot.Photon, env mopt.Local, dist float64) {
	origin := p.Ray.Pos()
	weightPowerDist := p.Weight * p.Power * dist

	energy := weightPowerDist * env.N / SpeedOfLight
	absorption := weightPowerDist * env.MuA
	shift := weightPowerDist * env.MuShift
	data.DepositTravel(origin, energy, absorption, shift)

	p.AddFlightTime(dist, env.N, SpeedOfLight)
	p.Ray.Travel(dist)
}
