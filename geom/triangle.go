// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SmoothTriangle is a mesh facet with per-vertex normals. The three vertex
// normals are interpolated by barycentric coordinate at the hit point, giving
// a smooth-shaded surface normal instead of the flat plane normal; the plane
// normal itself is checked against the vertex normals at construction time
// (a reversed winding panics) and used as a separating axis by overlap tests.
type SmoothTriangle struct {
	verts     [3]Point3
	norms     [3]Dir3
	planeNorm Dir3
}

// NewSmoothTriangle builds a triangle from three vertices in counter-clockwise
// winding (ALPHA, BETA, GAMMA) and their per-vertex normals.
func NewSmoothTriangle(verts [3]Point3, norms [3]Dir3) SmoothTriangle {
	edgeAB := verts[1].Sub(verts[0])
	edgeAC := verts[2].Sub(verts[0])
	planeNorm := DirFromVec3(edgeAB.Cross(edgeAC))

	for _, n := range norms {
		if n.Dot(planeNorm) <= 0 {
			chk.Panic("geom: smooth triangle %v has a vertex normal facing away from its plane normal", verts)
		}
	}

	return SmoothTriangle{verts: verts, norms: norms, planeNorm: planeNorm}
}

// Verts returns the triangle's three vertex positions.
func (t SmoothTriangle) Verts() [3]Point3 { return t.verts }

// PlaneNorm returns the triangle's (flat) plane normal.
func (t SmoothTriangle) PlaneNorm() Dir3 { return t.planeNorm }

// IntersectionCoors runs the Moller-Trumbore ray-triangle intersection test,
// returning the hit distance and the (u, v, w) barycentric weights of
// (BETA, GAMMA, ALPHA) at the hit point.
func (t SmoothTriangle) IntersectionCoors(ray *Ray) (dist float64, u, v, w float64, ok bool) {
	const eps = 1.0e-12

	edge1 := t.verts[1].Sub(t.verts[0])
	edge2 := t.verts[2].Sub(t.verts[0])

	dirVec := ray.Dir().Vec()
	dCrossE2 := dirVec.Cross(edge2)
	det := edge1.Dot(dCrossE2)
	if math.Abs(det) < eps {
		return 0, 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Pos().Sub(t.verts[0])
	uu := tvec.Dot(dCrossE2) * invDet
	if uu < 0 || uu > 1 {
		return 0, 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	vv := dirVec.Dot(qvec) * invDet
	if vv < 0 || uu+vv > 1 {
		return 0, 0, 0, 0, false
	}

	d := edge2.Dot(qvec) * invDet
	if d <= eps {
		return 0, 0, 0, 0, false
	}

	return d, uu, vv, 1 - uu - vv, true
}

// DistSide intersects ray against the triangle, returning the hit distance
// and the interpolated (smooth) oriented normal at the hit point.
func (t SmoothTriangle) DistSide(ray *Ray) (float64, Side, bool) {
	dist, u, v, w, ok := t.IntersectionCoors(ray)
	if !ok {
		return 0, Side{}, false
	}
	smoothVec := t.norms[1].Scale(u).Add(t.norms[2].Scale(v)).Add(t.norms[0].Scale(w))
	return dist, NewSide(ray.Dir(), DirFromVec3(smoothVec)), true
}

// Cast samples a uniformly-distributed random point on the triangle's surface
// (area-weighted by construction: a point drawn on the unit square is
// folded onto the unit triangle, with no rejection), returning a ray whose origin is the sampled
// point and whose direction is the interpolated normal there.
func (t SmoothTriangle) Cast(u01 func() float64) Ray {
	u := u01()
	v := u01()
	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}
	w := 1 - u - v

	edgeAB := t.verts[1].Sub(t.verts[0])
	edgeAC := t.verts[2].Sub(t.verts[0])

	pos := t.verts[0].Add(edgeAB.Mul(u)).Add(edgeAC.Mul(v))
	dir := DirFromVec3(t.norms[1].Scale(u).Add(t.norms[2].Scale(v)).Add(t.norms[0].Scale(w)))
	return NewRay(pos, dir)
}

// Overlap runs a separating-axis test between the triangle and an
// axis-aligned box: three box-face axes, the triangle's own plane normal, and
// the nine cross products of a box edge with a triangle edge. The shapes
// overlap only if every one of the thirteen candidate axes fails to separate
// them.
func (t SmoothTriangle) Overlap(cube Cube) bool {
	centre := cube.Centre()
	half := cube.HalfWidths()

	v0 := t.verts[0].Sub(centre)
	v1 := t.verts[1].Sub(centre)
	v2 := t.verts[2].Sub(centre)

	boxAxes := [3]Point3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, a := range boxAxes {
		if separatesAxis(a, [3]Point3{v0, v1, v2}, half) {
			return false
		}
	}

	if separatesAxis(t.planeNorm.Vec(), [3]Point3{v0, v1, v2}, half) {
		return false
	}

	edges := [3]Point3{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}
	for _, be := range boxAxes {
		for _, te := range edges {
			axis := be.Cross(te)
			if axis.LenSqr() < 1.0e-20 {
				continue
			}
			if separatesAxis(axis, [3]Point3{v0, v1, v2}, half) {
				return false
			}
		}
	}

	return true
}

// separatesAxis reports whether projecting the triangle verts and the box
// half-widths onto axis shows a gap between the two projected intervals.
func separatesAxis(axis Point3, verts [3]Point3, half Point3) bool {
	p0 := verts[0].Dot(axis)
	p1 := verts[1].Dot(axis)
	p2 := verts[2].Dot(axis)
	triMin := math.Min(p0, math.Min(p1, p2))
	triMax := math.Max(p0, math.Max(p1, p2))

	r := half.X()*math.Abs(axis.X()) + half.Y()*math.Abs(axis.Y()) + half.Z()*math.Abs(axis.Z())

	return triMin > r || triMax < -r
}
