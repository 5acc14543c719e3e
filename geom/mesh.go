// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Mesh is a collection of smooth triangles sharing one surface (a light
// emitter's geometry, or a detector's collecting face). Its bounding box is
// computed once at construction and cached.
type Mesh struct {
	tris       []SmoothTriangle
	mins, maxs Point3
	areas      []float64
	totalArea  float64
}

// NewMesh builds a mesh from its triangles. It panics on an empty triangle
// list: a mesh with no geometry cannot be bounded or sampled.
func NewMesh(tris []SmoothTriangle) *Mesh {
	if len(tris) == 0 {
		chk.Panic("geom: cannot build a mesh from zero triangles")
	}

	mins, maxs := tris[0].verts[0], tris[0].verts[0]
	areas := make([]float64, len(tris))
	var total float64
	for i, t := range tris {
		for _, v := range t.verts {
			mins = compMin(mins, v)
			maxs = compMax(maxs, v)
		}
		a := triangleArea(t)
		areas[i] = a
		total += a
	}

	return &Mesh{tris: tris, mins: mins, maxs: maxs, areas: areas, totalArea: total}
}

func triangleArea(t SmoothTriangle) float64 {
	edge1 := t.verts[1].Sub(t.verts[0])
	edge2 := t.verts[2].Sub(t.verts[0])
	return 0.5 * edge1.Cross(edge2).Len()
}

// Bounds returns the mesh's cached axis-aligned bounding corners.
func (m *Mesh) Bounds() (Point3, Point3) { return m.mins, m.maxs }

// Tris returns the mesh's triangles.
func (m *Mesh) Tris() []SmoothTriangle { return m.tris }

// TotalArea returns the sum of every triangle's area.
func (m *Mesh) TotalArea() float64 { return m.totalArea }

// Cast samples a point on the mesh surface, weighting each triangle by its
// share of the mesh's total area so the sample is uniform over the whole
// surface rather than biased towards small facets.
func (m *Mesh) Cast(u01 func() float64) Ray {
	target := u01() * m.totalArea
	var cum float64
	for i, a := range m.areas {
		cum += a
		if target <= cum || i == len(m.tris)-1 {
			return m.tris[i].Cast(u01)
		}
	}
	return m.tris[len(m.tris)-1].Cast(u01)
}

// DistSide finds the nearest triangle the ray strikes, if any.
func (m *Mesh) DistSide(ray *Ray) (float64, Side, bool) {
	bestDist := 0.0
	var bestSide Side
	found := false
	for _, t := range m.tris {
		d, s, ok := t.DistSide(ray)
		if !ok {
			continue
		}
		if !found || d < bestDist {
			bestDist, bestSide, found = d, s, true
		}
	}
	return bestDist, bestSide, found
}
