// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Ray is a (position, unit direction) pair driving a photon packet's
// trajectory through the scene.
type Ray struct {
	pos Point3
	dir Dir3
}

// NewRay constructs a ray from a position and direction.
func NewRay(pos Point3, dir Dir3) Ray {
	return Ray{pos: pos, dir: dir}
}

// Pos returns the ray's current position.
func (r *Ray) Pos() Point3 { return r.pos }

// Dir returns the ray's current direction.
func (r *Ray) Dir() Dir3 { return r.dir }

// SetPos overwrites the ray's position.
func (r *Ray) SetPos(p Point3) { r.pos = p }

// SetDir overwrites the ray's direction, which must already be unit length.
func (r *Ray) SetDir(d Dir3) { r.dir = d }

// DirMut returns a pointer to the direction so callers can rotate/reflect it
// in place; Normalize must be called (it always is, by the helpers in this
// package) before the ray is travelled again.
func (r *Ray) DirMut() *Dir3 { return &r.dir }

// Travel advances the ray's position by dist along its direction. dist must
// be strictly positive: travelling zero or backwards is always a bug in the
// caller.
func (r *Ray) Travel(dist float64) {
	if dist <= 0 {
		chk.Panic("geom: ray travel distance must be positive, got %v", dist)
	}
	r.pos = r.pos.Add(r.dir.Scale(dist))
}

// Rotate rotates the ray's direction in place by (phi, theta); see
// Dir3.Rotate.
func (r *Ray) Rotate(phi, theta float64) {
	r.dir.Rotate(phi, theta)
}
