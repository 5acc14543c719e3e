// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCubeContainsInclusive(t *testing.T) {
	c := NewCube(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))
	if !c.Contains(NewPoint3(0, 0, 0)) || !c.Contains(NewPoint3(1, 1, 1)) {
		t.Fatal("corners must be contained")
	}
	if c.Contains(NewPoint3(1.0001, 0, 0)) {
		t.Fatal("point outside box reported contained")
	}
}

func TestCubeMinsMustBeLessThanMaxs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for degenerate aabb")
		}
	}()
	NewCube(NewPoint3(1, 0, 0), NewPoint3(0, 1, 1))
}

func TestCubeDistHitsFace(t *testing.T) {
	c := NewCube(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))
	ray := NewRay(NewPoint3(-5, 0, 0), NewDir3(1, 0, 0))
	dist, ok := c.Dist(&ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	chk.Float64(t, "dist", 1e-9, dist, 4.0)
}

func TestCubeDistMisses(t *testing.T) {
	c := NewCube(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))
	ray := NewRay(NewPoint3(-5, 5, 0), NewDir3(1, 0, 0))
	_, ok := c.Dist(&ray)
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestCubeExpandKeepsCentre(t *testing.T) {
	c := NewCube(NewPoint3(0, 0, 0), NewPoint3(2, 2, 2))
	centreBefore := c.Centre()
	e := c.Expanded(0.1)
	centreAfter := e.Centre()
	chk.Float64(t, "cx", 1e-12, centreAfter.X(), centreBefore.X())
	chk.Float64(t, "cy", 1e-12, centreAfter.Y(), centreBefore.Y())
	chk.Float64(t, "cz", 1e-12, centreAfter.Z(), centreBefore.Z())
	if e.Volume() <= c.Volume() {
		t.Fatal("expanded cube must have greater volume")
	}
}

func TestNewSideClassification(t *testing.T) {
	rayDir := NewDir3(1, 0, 0)
	outward := NewDir3(1, 0, 0)
	s := NewSide(rayDir, outward)
	if !s.IsInside() {
		t.Fatal("ray travelling along the outward normal should classify as inside")
	}
}
