// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary implements the simulation's outer axis-aligned box and
// its six independent per-face conditions (kill / reflect / periodic).
package boundary

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mrefl"
	"github.com/cpmech/mcrt/phot"
)

// Direction names a face of the bounding box.
type Direction int

const (
	Top Direction = iota
	Bottom
	North
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	default:
		return "West"
	}
}

// Opposing returns the face on the other side of the box.
func (d Direction) Opposing() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// NormalVector returns the outward-pointing unit normal of the face.
func (d Direction) NormalVector() geom.Dir3 {
	switch d {
	case Top:
		return geom.NewDir3(0, 0, 1)
	case Bottom:
		return geom.NewDir3(0, 0, -1)
	case North:
		return geom.NewDir3(0, 1, 0)
	case South:
		return geom.NewDir3(0, -1, 0)
	case East:
		return geom.NewDir3(1, 0, 0)
	default:
		return geom.NewDir3(-1, 0, 0)
	}
}

// rayFacingDirection determines which face a ray is heading towards, by the
// dominant absolute component of its direction (ties favour x, then y).
func rayFacingDirection(ray *geom.Ray) Direction {
	dir := ray.Dir()
	ax, ay, az := math.Abs(dir.X()), math.Abs(dir.Y()), math.Abs(dir.Z())

	switch {
	case ax >= ay && ax >= az:
		if dir.X() > 0 {
			return East
		}
		return West
	case ay >= ax && ay >= az:
		if dir.Y() > 0 {
			return North
		}
		return South
	default:
		if dir.Z() > 0 {
			return Top
		}
		return Bottom
	}
}

// Condition is one of Kill, Reflect or Periodic.
type Condition interface {
	isCondition()
}

// Kill zeroes a photon's weight on arrival.
type Kill struct{}

func (Kill) isCondition() {}

// Reflect delegates to a reflectance model, killing the photon when the
// model declines to produce a new ray.
type Reflect struct {
	Model mrefl.Model
}

func (Reflect) isCondition() {}

// Periodic wraps the photon to the opposing face, offset inward by Padding
// to avoid immediate re-collision.
type Periodic struct {
	Padding float64
}

func (Periodic) isCondition() {}

// Boundary is the domain's bounding box plus its six face conditions.
type Boundary struct {
	Box                                         geom.Cube
	TopC, BottomC, NorthC, SouthC, EastC, WestC Condition
}

// NewKill builds a boundary where every face kills on arrival.
func NewKill(box geom.Cube) *Boundary {
	return &Boundary{Box: box, TopC: Kill{}, BottomC: Kill{}, NorthC: Kill{}, SouthC: Kill{}, EastC: Kill{}, WestC: Kill{}}
}

// NewReflect builds a boundary where every face reflects via the given
// model.
func NewReflect(box geom.Cube, model mrefl.Model) *Boundary {
	r := Reflect{Model: model}
	return &Boundary{Box: box, TopC: r, BottomC: r, NorthC: r, SouthC: r, EastC: r, WestC: r}
}

// NewPeriodic builds a boundary where every face wraps to its opposite,
// offset inward by padding.
func NewPeriodic(box geom.Cube, padding float64) *Boundary {
	p := Periodic{Padding: padding}
	return &Boundary{Box: box, TopC: p, BottomC: p, NorthC: p, SouthC: p, EastC: p, WestC: p}
}

func (b *Boundary) condition(d Direction) Condition {
	switch d {
	case Top:
		return b.TopC
	case Bottom:
		return b.BottomC
	case North:
		return b.NorthC
	case South:
		return b.SouthC
	case East:
		return b.EastC
	default:
		return b.WestC
	}
}

// SetFace assigns the condition for one face.
func (b *Boundary) SetFace(d Direction, c Condition) {
	switch d {
	case Top:
		b.TopC = c
	case Bottom:
		b.BottomC = c
	case North:
		b.NorthC = c
	case South:
		b.SouthC = c
	case East:
		b.EastC = c
	default:
		b.WestC = c
	}
}

// Hit is the result of DistanceToFace: the positive distance to the struck
// face and which face it is.
type Hit struct {
	Dist      float64
	Direction Direction
}

// DistanceToFace returns the nearest face a ray whose origin is inside the
// box will strike, or false if the ray's origin is not interior.
func (b *Boundary) DistanceToFace(ray *geom.Ray) (Hit, bool) {
	dist, side, ok := b.Box.DistSide(ray)
	if !ok {
		return Hit{}, false
	}
	if !side.IsInside() {
		return Hit{}, false
	}
	return Hit{Dist: dist, Direction: rayFacingDirection(ray)}, true
}

// Apply mutates the photon according to the condition of the face it struck.
func (b *Boundary) Apply(rng *rand.Rand, hit Hit, p *phot.Photon) {
	switch c := b.condition(hit.Direction).(type) {
	case Kill:
		p.Kill()
	case Reflect:
		norm := hit.Direction.NormalVector().Neg()
		side := geom.NewSide(p.Ray.Dir(), norm)
		ray, ok := c.Model.Reflect(rng, p.Ray.Pos(), p.Ray.Dir(), side)
		if !ok {
			p.Kill()
			return
		}
		p.Ray = ray
	case Periodic:
		b.wrapToOpposite(&p.Ray, hit.Direction, c.Padding)
	default:
		if !applyPlatformCondition(b, rng, hit, p, c) {
			chk.Panic("boundary: unhandled condition type %T", c)
		}
	}
}

// wrapToOpposite resets the position component normal to the struck face to
// the opposing face's coordinate, offset inward by padding.
func (b *Boundary) wrapToOpposite(ray *geom.Ray, d Direction, padding float64) {
	mins, maxs := b.Box.MinsMaxs()
	pos := ray.Pos()

	axis, atMax := faceAxis(d)
	var coord float64
	if atMax {
		coord = axisOf(mins, axis) + padding
	} else {
		coord = axisOf(maxs, axis) - padding
	}
	ray.SetPos(withAxis(pos, axis, coord))
}

func faceAxis(d Direction) (axis int, atMax bool) {
	switch d {
	case Top:
		return 2, true
	case Bottom:
		return 2, false
	case North:
		return 1, true
	case South:
		return 1, false
	case East:
		return 0, true
	default:
		return 0, false
	}
}

func axisOf(p geom.Point3, axis int) float64 {
	switch axis {
	case 0:
		return p.X()
	case 1:
		return p.Y()
	default:
		return p.Z()
	}
}

func withAxis(p geom.Point3, axis int, v float64) geom.Point3 {
	switch axis {
	case 0:
		return geom.NewPoint3(v, p.Y(), p.Z())
	case 1:
		return geom.NewPoint3(p.X(), v, p.Z())
	default:
		return geom.NewPoint3(p.X(), p.Y(), v)
	}
}
