// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/phot"
)

func newTestHit() Hit {
	side := geom.NewSide(geom.NewDir3(0, 0, 1), geom.NewDir3(0, 0, -1))
	return Hit{Dist: 1.0, Side: side}
}

func TestMirrorScalesWeightAndReflectsDirection(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	hit := newTestHit()
	rng := rand.New(rand.NewSource(1))

	Apply(rng, Mirror{Absorption: 0.9}, hit, &p, &mopt.Local{}, &out.Output{})

	chk.Float64(t, "weight", 1e-12, p.Weight, 0.9)
	chk.Float64(t, "dir-z", 1e-9, p.Ray.Dir().Z(), -1.0)
}

func TestSpectrometerCollectsAndKills(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	hit := newTestHit()
	data := &out.Output{Specs: []*out.Histogram{out.NewHistogram("s", 400e-9, 700e-9, 3)}}
	rng := rand.New(rand.NewSource(1))

	Apply(rng, Spectrometer{ID: 0}, hit, &p, &mopt.Local{}, data)

	if p.IsAlive() {
		t.Fatal("spectrometer must kill the photon")
	}
	total := 0.0
	for _, c := range data.Specs[0].Counts {
		total += c
	}
	chk.Float64(t, "total", 1e-12, total, 1.0)
}

func TestPhotonCollectorSkipsInsideHits(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	insideHit := Hit{Dist: 1, Side: geom.NewSide(geom.NewDir3(0, 0, 1), geom.NewDir3(0, 0, 1))}
	data := &out.Output{PhotCols: []*out.PhotonCollector{out.NewPhotonCollector("c", false)}}
	rng := rand.New(rand.NewSource(1))

	Apply(rng, PhotonCollector{ID: 0}, insideHit, &p, &mopt.Local{}, data)
	if len(data.PhotCols[0].Photons) != 0 {
		t.Fatal("expected an inside hit to be skipped")
	}

	outsideHit := newTestHit()
	Apply(rng, PhotonCollector{ID: 0}, outsideHit, &p, &mopt.Local{}, data)
	if len(data.PhotCols[0].Photons) != 1 {
		t.Fatal("expected an outside hit to be collected")
	}
	if !p.IsAlive() {
		t.Fatal("a non-killing collector must not kill the photon")
	}
}

func TestPhotonCollectorKillsWhenConfigured(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	hit := newTestHit()
	data := &out.Output{PhotCols: []*out.PhotonCollector{out.NewPhotonCollector("c", true)}}
	rng := rand.New(rand.NewSource(1))

	Apply(rng, PhotonCollector{ID: 0}, hit, &p, &mopt.Local{}, data)

	if len(data.PhotCols[0].Photons) != 1 {
		t.Fatal("expected the photon to be collected")
	}
	if p.IsAlive() {
		t.Fatal("expected a kill-configured collector to kill the photon")
	}
}

func TestChainInvokesEverySubAttribute(t *testing.T) {
	ray := geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(0, 0, 1))
	p := phot.New(ray, 500e-9, 1.0)
	hit := newTestHit()
	data := &out.Output{
		PhotCols: []*out.PhotonCollector{out.NewPhotonCollector("c", false)},
	}
	rng := rand.New(rand.NewSource(1))

	chain := Chain{Attrs: []Attribute{
		PhotonCollector{ID: 0},
		Mirror{Absorption: 0.5},
	}}
	Apply(rng, chain, hit, &p, &mopt.Local{}, data)

	if len(data.PhotCols[0].Photons) != 1 {
		t.Fatal("expected the collector sub-attribute to run")
	}
	chk.Float64(t, "weight", 1e-12, p.Weight, 0.5)
}
