// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math/rand"
	"testing"
)

func triXY() SmoothTriangle {
	up := NewDir3(0, 0, 1)
	return NewSmoothTriangle(
		[3]Point3{NewPoint3(0, 0, 0), NewPoint3(1, 0, 0), NewPoint3(0, 1, 0)},
		[3]Dir3{up, up, up},
	)
}

func TestTriangleIntersectionHitsFromAbove(t *testing.T) {
	tri := triXY()
	ray := NewRay(NewPoint3(0.2, 0.2, 5), NewDir3(0, 0, -1))
	dist, u, v, w, ok := tri.IntersectionCoors(&ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if dist <= 0 {
		t.Fatalf("expected positive distance, got %v", dist)
	}
	if u < 0 || v < 0 || w < 0 {
		t.Fatalf("barycentric coords must be non-negative: %v %v %v", u, v, w)
	}
}

func TestTriangleIntersectionMissesOutsideEdges(t *testing.T) {
	tri := triXY()
	ray := NewRay(NewPoint3(5, 5, 5), NewDir3(0, 0, -1))
	_, _, _, _, ok := tri.IntersectionCoors(&ray)
	if ok {
		t.Fatal("expected a miss outside the triangle footprint")
	}
}

func TestTriangleParallelRayMisses(t *testing.T) {
	tri := triXY()
	ray := NewRay(NewPoint3(0.2, 0.2, 1), NewDir3(1, 0, 0))
	_, _, _, _, ok := tri.IntersectionCoors(&ray)
	if ok {
		t.Fatal("a ray parallel to the triangle's plane must miss")
	}
}

func TestTriangleOverlapCube(t *testing.T) {
	tri := triXY()
	box := NewCube(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))
	if !tri.Overlap(box) {
		t.Fatal("triangle inside the box footprint should overlap")
	}
	far := NewCube(NewPoint3(10, 10, 10), NewPoint3(11, 11, 11))
	if tri.Overlap(far) {
		t.Fatal("distant box must not overlap")
	}
}

func TestTriangleCastStaysOnPlane(t *testing.T) {
	tri := triXY()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		ray := tri.Cast(rng.Float64)
		pos := ray.Pos()
		if pos.Z() != 0 {
			t.Fatalf("sampled point must lie on the triangle plane, got z=%v", pos.Z())
		}
		if pos.X() < 0 || pos.Y() < 0 || pos.X()+pos.Y() > 1.0000001 {
			t.Fatalf("sampled point %v outside triangle footprint", pos)
		}
	}
}
