// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build mpi

package boundary

import (
	"math/rand"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/mcrt/phot"
)

// MpiRank is a periodic-style face condition that, instead of wrapping the
// photon back into this rank's own domain, hands it off to the neighbouring
// MPI rank that owns the adjacent sub-domain. Only available in builds
// tagged "mpi"; the default build does not define this condition.
type MpiRank struct {
	DestRank int
}

func (MpiRank) isCondition() {}

// outbox accumulates photons awaiting transfer to neighbouring ranks until
// Flush sends them.
type outbox struct {
	photons []phot.Photon
}

var pendingTransfers = map[int]*outbox{}

// Queue marks p for transfer to the destination rank instead of applying it
// locally. Queued photons stay in the outbox until Flush is called for the
// destination rank; the scheduler in package sim does not call Flush.
func (m MpiRank) Queue(p phot.Photon) {
	ob, ok := pendingTransfers[m.DestRank]
	if !ok {
		ob = &outbox{}
		pendingTransfers[m.DestRank] = ob
	}
	ob.photons = append(ob.photons, p)
}

// Flush sends every queued photon for destRank to its owning process via
// gosl/mpi and clears the local queue. world must be the process's MPI
// communicator.
func Flush(world *mpi.Communicator, destRank int) {
	ob, ok := pendingTransfers[destRank]
	if !ok || len(ob.photons) == 0 {
		return
	}
	for _, p := range ob.photons {
		buf := []float64{
			p.Ray.Pos().X(), p.Ray.Pos().Y(), p.Ray.Pos().Z(),
			p.Ray.Dir().X(), p.Ray.Dir().Y(), p.Ray.Dir().Z(),
			p.Weight, p.Wavelength, p.Power,
		}
		world.Send(buf, destRank, 0)
	}
	ob.photons = ob.photons[:0]
}

// applyPlatformCondition routes a photon crossing an MpiRank face into the
// transfer queue instead of reflecting or killing it locally.
func applyPlatformCondition(_ *Boundary, _ *rand.Rand, _ Hit, p *phot.Photon, c Condition) bool {
	m, ok := c.(MpiRank)
	if !ok {
		return false
	}
	m.Queue(*p)
	p.Kill()
	return true
}
