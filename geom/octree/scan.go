// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octree

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
)

// leafScan tests every triangle referenced by a leaf cell against ray, which
// must already be known to lie within the leaf's boundary. It returns either
// a surface hit (when the nearest triangle intersection falls strictly
// within the leaf's own exit distance, widened by bump) or the leaf's exit
// distance so the caller can step into the neighbouring cell.
func (t *Tree) leafScan(ray *geom.Ray, bump float64) (hit Hit, boundaryDist float64, isHit bool) {
	if !t.IsLeaf() {
		chk.Panic("octree: leafScan called on a branch cell")
	}

	boundaryDist, ok := t.Boundary.Dist(ray)
	if !ok {
		chk.Panic("octree: ray known to be inside the leaf has no exit distance")
	}
	if len(t.Tris) == 0 {
		return Hit{}, boundaryDist, false
	}

	var nearest Hit
	found := false
	for _, ref := range t.Tris {
		dist, side, ok := ref.Tri.DistSide(ray)
		if !ok {
			continue
		}
		if !found || dist < nearest.Dist {
			nearest = Hit{AttrRef: ref.AttrRef, Dist: dist, Side: side}
			found = true
		}
	}

	if found && nearest.Dist < boundaryDist+bump {
		return nearest, boundaryDist, true
	}
	return Hit{}, boundaryDist, false
}

// Scan returns the nearest triangle hit within maxDist along ray, or false if
// none exists. bump bridges the floating-point gap between a cell's exit
// face and the next cell's interior; it must match the value used elsewhere
// in the kernel for stepping off surfaces. The supplied ray is travelled
// in-place as the scan steps through cells.
func (t *Tree) Scan(ray *geom.Ray, bump, maxDist float64) (Hit, bool) {
	if bump <= 0 {
		chk.Panic("octree: bump distance must be positive, got %v", bump)
	}
	if maxDist <= 0 {
		chk.Panic("octree: max distance must be positive, got %v", maxDist)
	}

	distTravelled := 0.0

	if !t.Boundary.Contains(ray.Pos()) {
		dist, ok := t.Boundary.Dist(ray)
		if !ok {
			return Hit{}, false
		}
		d := dist + bump
		ray.Travel(d)
		distTravelled += d
	}

	for {
		cell := t.TryFindLeaf(ray.Pos())
		if cell == nil {
			return Hit{}, false
		}
		if distTravelled > maxDist {
			return Hit{}, false
		}

		hit, boundaryDist, isHit := cell.leafScan(ray, bump)
		if isHit {
			hit.Dist += distTravelled
			if hit.Dist > maxDist {
				return Hit{}, false
			}
			return hit, true
		}

		d := boundaryDist + bump
		ray.Travel(d)
		distTravelled += d
	}
}
