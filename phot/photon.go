// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phot implements the photon packet: a Monte Carlo statistical
// carrier, not a physical photon.
package phot

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/google/uuid"
)

// Photon is the unit of work driven through the engine kernel.
type Photon struct {
	Ray        geom.Ray
	Weight     float64
	Wavelength float64
	Power      float64
	TOF        *float64
	UID        uuid.UUID
}

// New constructs a fresh photon with weight 1, wavelength and power must be
// strictly positive.
func New(ray geom.Ray, wavelength, power float64) Photon {
	if wavelength <= 0 {
		chk.Panic("phot: wavelength must be positive, got %v", wavelength)
	}
	if power <= 0 {
		chk.Panic("phot: power must be positive, got %v", power)
	}
	return Photon{Ray: ray, Weight: 1.0, Wavelength: wavelength, Power: power}
}

// WithTime marks the photon as time-resolved, starting its time-of-flight
// accumulator at zero.
func (p Photon) WithTime() Photon {
	tof := 0.0
	p.TOF = &tof
	return p
}

// IsTimeResolved reports whether the photon accumulates time-of-flight.
func (p Photon) IsTimeResolved() bool { return p.TOF != nil }

// AddFlightTime accumulates elapsed time for a travel step of length dist
// through a medium of refractive index n, using the given vacuum speed of
// light. No-op for photons that are not time-resolved.
func (p *Photon) AddFlightTime(dist, n, c float64) {
	if p.TOF == nil {
		return
	}
	*p.TOF += dist * n / c
}

// Kill sets the photon's weight to zero. A killed photon must not be
// re-entered into the event loop.
func (p *Photon) Kill() { p.Weight = 0 }

// IsAlive reports whether the photon still carries positive weight.
func (p *Photon) IsAlive() bool { return p.Weight > 0 }
