// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Side classifies which face of a surface a ray hit: the ray came from
// Inside the surface (normal points back along the ray) or Outside it.
type Side struct {
	inside bool
	norm   Dir3
}

// NewSide classifies a hit from the incoming ray direction and the
// geometric (outward) normal of the surface struck.
func NewSide(rayDir Dir3, outwardNorm Dir3) Side {
	if rayDir.Dot(outwardNorm) >= 0 {
		return Side{inside: true, norm: outwardNorm.Neg()}
	}
	return Side{inside: false, norm: outwardNorm}
}

// IsInside reports whether the hit was classified as coming from inside
// the surface.
func (s Side) IsInside() bool { return s.inside }

// Norm returns the oriented normal: pointing back towards the side the ray
// arrived from.
func (s Side) Norm() Dir3 { return s.norm }

// Cube is an axis-aligned bounding box, used both as the simulation's outer
// boundary and as the octree's spatial partitioning volume.
type Cube struct {
	mins, maxs Point3
}

// NewCube constructs a box. mins must be strictly less than maxs on every
// axis.
func NewCube(mins, maxs Point3) Cube {
	if mins.X() >= maxs.X() || mins.Y() >= maxs.Y() || mins.Z() >= maxs.Z() {
		chk.Panic("geom: aabb mins %v must be strictly less than maxs %v", mins, maxs)
	}
	return Cube{mins: mins, maxs: maxs}
}

// NewCubeShrink builds the smallest box containing every vertex of the
// given meshes.
func NewCubeShrink(meshes []*Mesh) Cube {
	if len(meshes) == 0 {
		chk.Panic("geom: cannot build a bounding cube from zero meshes")
	}
	mins, maxs := meshes[0].Bounds()
	for _, m := range meshes[1:] {
		mn, mx := m.Bounds()
		mins = compMin(mins, mn)
		maxs = compMax(maxs, mx)
	}
	return Cube{mins: mins, maxs: maxs}
}

func compMin(a, b Point3) Point3 {
	return Point3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func compMax(a, b Point3) Point3 {
	return Point3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}

// Mins returns the box's minimum corner.
func (c Cube) Mins() Point3 { return c.mins }

// Maxs returns the box's maximum corner.
func (c Cube) Maxs() Point3 { return c.maxs }

// MinsMaxs returns both corners together.
func (c Cube) MinsMaxs() (Point3, Point3) { return c.mins, c.maxs }

// Widths returns the per-axis extents.
func (c Cube) Widths() Point3 { return c.maxs.Sub(c.mins) }

// HalfWidths returns half of Widths.
func (c Cube) HalfWidths() Point3 { return c.Widths().Mul(0.5) }

// Centre returns the box's geometric centre.
func (c Cube) Centre() Point3 { return c.mins.Add(c.maxs).Mul(0.5) }

// Volume returns the box's enclosed volume.
func (c Cube) Volume() float64 {
	w := c.Widths()
	return w.X() * w.Y() * w.Z()
}

// Contains reports whether p lies within the box, inclusive on both faces.
func (c Cube) Contains(p Point3) bool {
	return p.X() >= c.mins.X() && p.X() <= c.maxs.X() &&
		p.Y() >= c.mins.Y() && p.Y() <= c.maxs.Y() &&
		p.Z() >= c.mins.Z() && p.Z() <= c.maxs.Z()
}

// Overlap reports whether two boxes intersect (inclusive).
func (c Cube) Overlap(o Cube) bool {
	return c.mins.X() <= o.maxs.X() && c.maxs.X() >= o.mins.X() &&
		c.mins.Y() <= o.maxs.Y() && c.maxs.Y() >= o.mins.Y() &&
		c.mins.Z() <= o.maxs.Z() && c.maxs.Z() >= o.mins.Z()
}

// Expand moves every face outward by f times the box's half-width on that
// axis, so each width grows by the fraction f, keeping the centre fixed. Used by the octree builder's padding fraction.
func (c *Cube) Expand(f float64) {
	d := c.HalfWidths().Mul(f)
	c.mins = c.mins.Sub(d)
	c.maxs = c.maxs.Add(d)
}

// Expanded returns a copy of c expanded by f; see Expand.
func (c Cube) Expanded(f float64) Cube {
	n := c
	n.Expand(f)
	return n
}

// slabIntersections returns the ray parameter range [tMin, tMax] the slab
// test admits, which may be empty (tMin > tMax) or entirely behind the ray
// origin (tMax <= 0).
func (c Cube) slabIntersections(ray *Ray) (tMin, tMax float64) {
	pos, dir := ray.Pos(), ray.Dir()
	tMin, tMax = math.Inf(-1), math.Inf(1)
	mins, maxs := [3]float64{c.mins.X(), c.mins.Y(), c.mins.Z()}, [3]float64{c.maxs.X(), c.maxs.Y(), c.maxs.Z()}
	p := [3]float64{pos.X(), pos.Y(), pos.Z()}
	d := [3]float64{dir.X(), dir.Y(), dir.Z()}
	for i := 0; i < 3; i++ {
		t0 := (mins[i] - p[i]) / d[i]
		t1 := (maxs[i] - p[i]) / d[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
	}
	return tMin, tMax
}

// Dist returns the nearest positive intersection distance along ray, or
// false if the ray misses the box entirely.
func (c Cube) Dist(ray *Ray) (float64, bool) {
	tMin, tMax := c.slabIntersections(ray)
	if tMax <= 0 || tMin > tMax {
		return 0, false
	}
	if tMin > 0 {
		return tMin, true
	}
	return tMax, true
}

// DistSide is Dist plus the Side classification of the face struck,
// determined from which axis of the hit point is nearest an extreme of the
// box relative to its centre.
func (c Cube) DistSide(ray *Ray) (float64, Side, bool) {
	dist, ok := c.Dist(ray)
	if !ok {
		return 0, Side{}, false
	}
	hit := ray.Pos().Add(ray.Dir().Scale(dist))
	rel := hit.Sub(c.Centre())

	bestAxis, bestFrac := 0, math.Abs(rel.X())/maxAbsNonZero(c.HalfWidths().X())
	if f := math.Abs(rel.Y()) / maxAbsNonZero(c.HalfWidths().Y()); f > bestFrac {
		bestAxis, bestFrac = 1, f
	}
	if f := math.Abs(rel.Z()) / maxAbsNonZero(c.HalfWidths().Z()); f > bestFrac {
		bestAxis, bestFrac = 2, f
	}

	var norm Dir3
	switch bestAxis {
	case 0:
		norm = NewDir3(math.Copysign(1, rel.X()), 0, 0)
	case 1:
		norm = NewDir3(0, math.Copysign(1, rel.Y()), 0)
	default:
		norm = NewDir3(0, 0, math.Copysign(1, rel.Z()))
	}
	return dist, NewSide(ray.Dir(), norm), true
}

func maxAbsNonZero(v float64) float64 {
	if math.Abs(v) < 1.0e-300 {
		return 1.0e-300
	}
	return v
}
