// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phot

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
)

func testRay() geom.Ray {
	return geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(1, 0, 0))
}

func TestNewPhotonStartsAtFullWeight(t *testing.T) {
	p := New(testRay(), 550, 1.0)
	chk.Float64(t, "weight", 1e-12, p.Weight, 1.0)
	if !p.IsAlive() {
		t.Fatal("freshly emitted photon must be alive")
	}
}

func TestNewPhotonRejectsNonPositiveWavelength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive wavelength")
		}
	}()
	New(testRay(), 0, 1.0)
}

func TestKillZeroesWeight(t *testing.T) {
	p := New(testRay(), 550, 1.0)
	p.Kill()
	if p.IsAlive() {
		t.Fatal("killed photon must report not alive")
	}
}

func TestWithTimeTracksFlightTime(t *testing.T) {
	p := New(testRay(), 550, 1.0).WithTime()
	if !p.IsTimeResolved() {
		t.Fatal("expected time-resolved photon")
	}
	p.AddFlightTime(3.0, 1.0, 3.0)
	chk.Float64(t, "tof", 1e-12, *p.TOF, 1.0)
}

func TestAddFlightTimeNoOpWithoutTime(t *testing.T) {
	p := New(testRay(), 550, 1.0)
	p.AddFlightTime(3.0, 1.0, 3.0)
	if p.TOF != nil {
		t.Fatal("non-time-resolved photon must not gain a tof pointer")
	}
}
