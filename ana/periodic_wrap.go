// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/phot"
)

// PeriodicWrap is a pencil beam travelling straight through a box whose
// every face wraps to its opposite, offset inward by a small padding. A
// photon that reaches a face must re-enter at the corresponding point on the
// opposite face, offset by padding, with its direction unchanged.
type PeriodicWrap struct {
	Mins, Maxs geom.Point3
	Padding    float64
}

// Init builds the box and its padding.
func (o *PeriodicWrap) Init(mins, maxs geom.Point3, padding float64) {
	o.Mins, o.Maxs = mins, maxs
	o.Padding = padding
}

// Build returns a fully-periodic Boundary over the configured box.
func (o PeriodicWrap) Build() *boundary.Boundary {
	box := geom.NewCube(o.Mins, o.Maxs)
	return boundary.NewPeriodic(box, o.Padding)
}

// Cross drives a single photon from pos/dir to its first face hit and
// returns the resulting photon.
func (o PeriodicWrap) Cross(pos geom.Point3, dir geom.Dir3) phot.Photon {
	bound := o.Build()
	ray := geom.NewRay(pos, dir)
	p := phot.New(ray, 500e-9, 1.0)

	hit, ok := bound.DistanceToFace(&p.Ray)
	if !ok {
		chk.Panic("ana: periodic wrap scenario photon must start inside the box")
	}
	rng := rand.New(rand.NewSource(1))
	bound.Apply(rng, hit, &p)
	return p
}

// CheckWrapsToOppositeFaceUnchangedDirection asserts the photon re-enters at
// expectedPos, with its direction and alive status unchanged.
func (o PeriodicWrap) CheckWrapsToOppositeFaceUnchangedDirection(tst *testing.T, pos geom.Point3, dir geom.Dir3, expectedPos geom.Point3, tol float64) {
	p := o.Cross(pos, dir)

	if !p.IsAlive() {
		tst.Fatal("expected a periodic wrap to leave the photon alive")
	}

	gotPos, wantPos := p.Ray.Pos(), expectedPos
	chk.Float64(tst, "wrapped X", tol, gotPos.X(), wantPos.X())
	chk.Float64(tst, "wrapped Y", tol, gotPos.Y(), wantPos.Y())
	chk.Float64(tst, "wrapped Z", tol, gotPos.Z(), wantPos.Z())

	gotDir, wantDir := p.Ray.Dir().Vec(), dir.Vec()
	chk.Vector(tst, "direction unchanged", tol, gotDir[:], wantDir[:])
}
