// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/geom/octree"
)

func testOctreeHit(dist float64) octree.Hit {
	return octree.Hit{AttrRef: 0, Dist: dist, Side: geom.NewSide(geom.NewDir3(1, 0, 0), geom.NewDir3(1, 0, 0))}
}

func TestNewEventSurfaceHitIsClosest(t *testing.T) {
	e := NewEvent(2.0, 3.0, testOctreeHit(1.0), true, boundary.Hit{}, false, 0.5)
	if e.Kind != SurfaceEvent {
		t.Fatalf("expected SurfaceEvent, got %v", e.Kind)
	}
	if e.Surface.Dist != 1.0 {
		t.Fatalf("expected dist 1.0, got %v", e.Surface.Dist)
	}
}

func TestNewEventVoxelCollisionWithNoOtherHits(t *testing.T) {
	e := NewEvent(2.0, 3.0, octree.Hit{}, false, boundary.Hit{}, false, 0.5)
	if e.Kind != VoxelEvent || e.Dist != 2.0 {
		t.Fatalf("expected Voxel(2.0), got %v %v", e.Kind, e.Dist)
	}
}

func TestNewEventScatteringPreemptsASurfaceHit(t *testing.T) {
	e := NewEvent(2.0, 1.0, testOctreeHit(2.0), true, boundary.Hit{}, false, 0.5)
	if e.Kind != ScatteringEvent || e.Dist != 1.0 {
		t.Fatalf("expected Scattering(1.0), got %v %v", e.Kind, e.Dist)
	}
}

func TestNewEventBoundaryOnlyConsideredWithoutASurfaceHit(t *testing.T) {
	bhit := boundary.Hit{Dist: 0.1, Direction: boundary.North}
	e := NewEvent(2.0, 1.0, octree.Hit{}, false, bhit, true, 0.5)
	if e.Kind != BoundaryEvent || e.Boundary != bhit {
		t.Fatalf("expected Boundary(%v), got %v %v", bhit, e.Kind, e.Boundary)
	}
}
