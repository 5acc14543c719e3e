// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim drives a single photon through its event loop: classifying
// the next interaction, scattering, travelling and depositing into the
// output accumulators.
package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/geom/octree"
)

// Kind classifies the next interaction a photon will undergo.
type Kind int

const (
	VoxelEvent Kind = iota
	ScatteringEvent
	SurfaceEvent
	BoundaryEvent
)

// Event is the outcome of classifying a photon's next step: which kind of
// interaction happens next, how far it is, and (for Surface/Boundary kinds)
// the struck geometry.
type Event struct {
	Kind     Kind
	Dist     float64
	Surface  octree.Hit
	Boundary boundary.Hit
}

// NewEvent picks the nearest of the candidate interaction distances.
// A surface hit is taken unless a voxel-grid crossing or a scattering event
// comes before it (within bumpDist); a scattering event closer than the
// voxel crossing pre-empts that crossing; and only once there is no
// surface hit at all does a boundary crossing get considered.
func NewEvent(voxelDist, scatDist float64, surfHit octree.Hit, hasSurfHit bool, boundaryHit boundary.Hit, hasBoundaryHit bool, bumpDist float64) Event {
	if voxelDist <= 0 {
		chk.Panic("sim: voxel distance must be positive, got %v", voxelDist)
	}
	if scatDist <= 0 {
		chk.Panic("sim: scattering distance must be positive, got %v", scatDist)
	}
	if bumpDist <= 0 {
		chk.Panic("sim: bump distance must be positive, got %v", bumpDist)
	}

	if hasSurfHit {
		if voxelDist < surfHit.Dist+bumpDist {
			if scatDist < voxelDist+bumpDist {
				return Event{Kind: ScatteringEvent, Dist: scatDist}
			}
			return Event{Kind: VoxelEvent, Dist: voxelDist}
		}
		if scatDist < surfHit.Dist+bumpDist {
			return Event{Kind: ScatteringEvent, Dist: scatDist}
		}
		return Event{Kind: SurfaceEvent, Surface: surfHit}
	}

	if hasBoundaryHit {
		if boundaryHit.Dist < scatDist && boundaryHit.Dist < voxelDist+bumpDist {
			return Event{Kind: BoundaryEvent, Boundary: boundaryHit}
		}
	}

	if scatDist < voxelDist+bumpDist {
		return Event{Kind: ScatteringEvent, Dist: scatDist}
	}
	return Event{Kind: VoxelEvent, Dist: voxelDist}
}
