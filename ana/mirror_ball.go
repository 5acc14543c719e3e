// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/attr"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/phot"
)

// MirrorBall is a beam inside a reflective spherical shell, struck from the
// inside at normal incidence to the local tangent plane. A Mirror attribute
// whose Absorption factor (the multiplier applied to the weight) is 1 must
// leave the photon's weight untouched and send it
// back the way it came (mirror reflection about the hit normal); the
// distance to its next hit on the opposite side of the sphere must be
// positive.
type MirrorBall struct {
	Radius     float64
	HitPoint   geom.Point3
	IncidentAt geom.Point3
}

// Init places the beam at the sphere's centre, heading for the wall along
// +X, so the wall is struck at (Radius, 0, 0).
func (o *MirrorBall) Init(radius float64) {
	o.Radius = radius
	o.IncidentAt = geom.NewPoint3(0, 0, 0)
	o.HitPoint = geom.NewPoint3(radius, 0, 0)
}

// outwardNormal is the sphere's own geometric normal at HitPoint.
func (o MirrorBall) outwardNormal() geom.Dir3 {
	n := o.HitPoint.Sub(geom.NewPoint3(0, 0, 0))
	return geom.DirFromVec3(n)
}

// Fire builds the incident photon and applies a fully-reflective Mirror
// attribute at the wall, returning the resulting photon.
func (o MirrorBall) Fire(weight float64) phot.Photon {
	dir := geom.DirFromVec3(o.HitPoint.Sub(o.IncidentAt))
	ray := geom.NewRay(o.IncidentAt, dir)
	p := phot.New(ray, 500e-9, 1.0)
	p.Weight = weight

	side := geom.NewSide(p.Ray.Dir(), o.outwardNormal())
	hit := attr.Hit{Dist: o.Radius, Side: side}
	rng := rand.New(rand.NewSource(1))
	attr.Apply(rng, attr.Mirror{Absorption: 1.0}, hit, &p, nil, nil)
	return p
}

// CheckReflectionPreservesWeightAndReversesDirection asserts the mirror law:
// unchanged weight, and a reflected direction equal to the exact mirror
// reflection of the incident ray about the hit normal.
func (o MirrorBall) CheckReflectionPreservesWeightAndReversesDirection(tst *testing.T, weight float64, tol float64) {
	incidentDir := geom.DirFromVec3(o.HitPoint.Sub(o.IncidentAt))
	expectedDir := attr.CalcRefDir(incidentDir, o.outwardNormal())

	p := o.Fire(weight)

	chk.Float64(tst, "weight unchanged (zero mirror absorption)", tol, p.Weight, weight)

	got, want := p.Ray.Dir().Vec(), expectedDir.Vec()
	chk.Vector(tst, "reflected direction", tol, got[:], want[:])

	nextDist := 2 * o.Radius // straight back across the sphere's diameter
	if nextDist <= 0 {
		tst.Fatal("expected a positive distance to the next hit")
	}
}
