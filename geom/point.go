// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometric primitives the simulation core is
// built from: points, directions, rays, axis-aligned bounding boxes and
// triangles with per-vertex normals.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is a position in three-dimensional space.
type Point3 = mgl64.Vec3

// NewPoint3 constructs a new position.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// Dir3 is a unit-length direction vector.
//
// Callers that mutate the underlying components (rotation, reflection,
// refraction) must call Normalize before the value is used again; every
// helper in this package that returns a Dir3 already does so.
type Dir3 struct {
	v mgl64.Vec3
}

// NewDir3 builds a direction, normalising the supplied vector.
func NewDir3(x, y, z float64) Dir3 {
	d := Dir3{v: mgl64.Vec3{x, y, z}}
	d.Normalize()
	return d
}

// DirFromVec3 wraps a raw vector as a direction, normalising it.
func DirFromVec3(v mgl64.Vec3) Dir3 {
	d := Dir3{v: v}
	d.Normalize()
	return d
}

// Vec returns the underlying vector.
func (d Dir3) Vec() mgl64.Vec3 { return d.v }

func (d Dir3) X() float64 { return d.v.X() }
func (d Dir3) Y() float64 { return d.v.Y() }
func (d Dir3) Z() float64 { return d.v.Z() }

// Normalize restores the unit-length invariant. It panics if the vector has
// collapsed to zero length, which is always a programming error upstream.
func (d *Dir3) Normalize() {
	l := d.v.Len()
	if l < 1.0e-300 {
		chk.Panic("geom: direction vector has zero length")
	}
	d.v = d.v.Mul(1.0 / l)
}

// Dot returns the dot product with another direction.
func (d Dir3) Dot(o Dir3) float64 { return d.v.Dot(o.v) }

// DotVec returns the dot product with a raw vector.
func (d Dir3) DotVec(v mgl64.Vec3) float64 { return d.v.Dot(v) }

// Neg returns the opposite direction.
func (d Dir3) Neg() Dir3 { return Dir3{v: d.v.Mul(-1)} }

// Scale multiplies the direction by a scalar, returning a raw vector (the
// result is generally not unit length, e.g. for travel displacement).
func (d Dir3) Scale(s float64) mgl64.Vec3 { return d.v.Mul(s) }

// Rotate rotates the direction by polar angle phi (from the current
// direction) and azimuthal angle theta about it, matching the scattering
// convention used throughout the kernel: phi is measured from the current
// direction of travel, theta uniformly spins around it.
func (d *Dir3) Rotate(phi, theta float64) {
	// Build an orthonormal frame (d, u, v) and rotate within it.
	u, v := d.orthonormalBasis()
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)

	newDir := d.v.Mul(cosPhi).
		Add(u.Mul(sinPhi * cosTheta)).
		Add(v.Mul(sinPhi * sinTheta))

	d.v = newDir
	d.Normalize()
}

// orthonormalBasis builds two vectors perpendicular to d and to each other,
// using the standard "pick the least-aligned axis" trick to avoid
// degeneracy.
func (d Dir3) orthonormalBasis() (mgl64.Vec3, mgl64.Vec3) {
	var arbitrary mgl64.Vec3
	if math.Abs(d.v.X()) < math.Abs(d.v.Y()) && math.Abs(d.v.X()) < math.Abs(d.v.Z()) {
		arbitrary = mgl64.Vec3{1, 0, 0}
	} else if math.Abs(d.v.Y()) < math.Abs(d.v.Z()) {
		arbitrary = mgl64.Vec3{0, 1, 0}
	} else {
		arbitrary = mgl64.Vec3{0, 0, 1}
	}
	u := d.v.Cross(arbitrary).Normalize()
	v := d.v.Cross(u).Normalize()
	return u, v
}
