// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package octree implements the adaptive hit-scan spatial index: a recursive
// Branch/Leaf tree over a scene's triangles, answering nearest-hit queries
// for photon rays.
package octree

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
)

// TriRef pairs a triangle with the attribute reference attached to its
// owning surface. AttrRef is an opaque handle (an index into the scene's
// attribute table, typically) carried through untouched.
type TriRef struct {
	Tri     geom.SmoothTriangle
	AttrRef int
}

// Hit is the result of a successful scan: the attribute struck, the positive
// distance travelled, and the oriented side of the hit.
type Hit struct {
	AttrRef int
	Dist    float64
	Side    geom.Side
}

// Settings controls tree construction: the maximum recursion depth, the
// triangle-count threshold below which a cell stops subdividing, and the
// padding fraction used to grow every candidate volume for overlap testing.
type Settings struct {
	MaxDepth    int
	TargetTris  int
	PaddingFrac float64
}

// Tree is a Branch (eight children) or a Leaf (boundary + triangle list).
// Branch has nil Tris and eight non-nil Children; Leaf has nil Children.
type Tree struct {
	Boundary geom.Cube
	Children [8]*Tree
	Tris     []TriRef
}

// Build constructs a tree over every triangle of every supplied mesh,
// expanding the root boundary by the padding fraction and recursing until
// either max depth is reached or a cell's candidate triangle count falls to
// the target. Construction is deterministic given its inputs.
func Build(sett Settings, meshes []*geom.Mesh, attrRefs []int) *Tree {
	if len(meshes) != len(attrRefs) {
		chk.Panic("octree: meshes and attrRefs must have the same length")
	}

	boundary := geom.NewCubeShrink(meshes)
	boundary = boundary.Expanded(sett.PaddingFrac)

	var all []TriRef
	for i, m := range meshes {
		for _, tri := range m.Tris() {
			all = append(all, TriRef{Tri: tri, AttrRef: attrRefs[i]})
		}
	}

	if sett.MaxDepth == 0 || len(all) <= sett.TargetTris {
		return &Tree{Boundary: boundary, Tris: all}
	}

	return &Tree{Boundary: boundary, Children: buildChildren(sett, boundary, 1, all)}
}

func buildChildren(sett Settings, parent geom.Cube, depth int, candidates []TriRef) [8]*Tree {
	hw := parent.HalfWidths()
	mins := parent.Mins()

	var out [8]*Tree
	for i := 0; i < 8; i++ {
		dx, dy, dz := 0.0, 0.0, 0.0
		if i&1 != 0 {
			dx = hw.X()
		}
		if i&2 != 0 {
			dy = hw.Y()
		}
		if i&4 != 0 {
			dz = hw.Z()
		}
		childMin := geom.NewPoint3(mins.X()+dx, mins.Y()+dy, mins.Z()+dz)
		childMax := childMin.Add(hw)
		out[i] = buildChild(sett, geom.NewCube(childMin, childMax), depth, candidates)
	}
	return out
}

func buildChild(sett Settings, boundary geom.Cube, depth int, candidates []TriRef) *Tree {
	detect := boundary.Expanded(sett.PaddingFrac)

	var tris []TriRef
	for _, c := range candidates {
		if c.Tri.Overlap(detect) {
			tris = append(tris, c)
		}
	}

	if len(tris) <= sett.TargetTris || depth >= sett.MaxDepth {
		return &Tree{Boundary: boundary, Tris: tris}
	}

	return &Tree{Boundary: boundary, Children: buildChildren(sett, boundary, depth+1, tris)}
}

// IsLeaf reports whether t is a terminal (populated) cell.
func (t *Tree) IsLeaf() bool { return t.Children[0] == nil }

// NumCells returns the total number of cells in the subtree rooted at t,
// t included.
func (t *Tree) NumCells() int {
	if t.IsLeaf() {
		return 1
	}
	n := 1
	for _, c := range t.Children {
		n += c.NumCells()
	}
	return n
}

// NumLeaves returns the number of leaf cells in the subtree rooted at t.
func (t *Tree) NumLeaves() int {
	if t.IsLeaf() {
		return 1
	}
	n := 0
	for _, c := range t.Children {
		n += c.NumLeaves()
	}
	return n
}

// NumTris returns the total count of triangle references held across every
// leaf in the subtree rooted at t.
func (t *Tree) NumTris() int {
	if t.IsLeaf() {
		return len(t.Tris)
	}
	n := 0
	for _, c := range t.Children {
		n += c.NumTris()
	}
	return n
}

// Depth returns the maximum depth from t to a terminal cell (a lone leaf has
// depth 1).
func (t *Tree) Depth() int {
	if t.IsLeaf() {
		return 1
	}
	max := 0
	for _, c := range t.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// TryFindLeaf returns the leaf containing pos, or nil if pos falls outside
// the tree's own boundary.
func (t *Tree) TryFindLeaf(pos geom.Point3) *Tree {
	if !t.Boundary.Contains(pos) {
		return nil
	}
	return t.FindLeaf(pos)
}

// FindLeaf descends by octant centre-comparison to the leaf containing pos.
// pos must already be known to lie within t's boundary.
func (t *Tree) FindLeaf(pos geom.Point3) *Tree {
	if t.IsLeaf() {
		return t
	}
	c := t.Boundary.Centre()
	index := 0
	if pos.X() >= c.X() {
		index |= 1
	}
	if pos.Y() >= c.Y() {
		index |= 2
	}
	if pos.Z() >= c.Z() {
		index |= 4
	}
	return t.Children[index].FindLeaf(pos)
}
