// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/mcrt/geom"
)

// PlaneAxis names the axis-aligned plane a Plane raster is projected onto.
type PlaneAxis int

const (
	PlaneXY PlaneAxis = iota
	PlaneXZ
	PlaneYZ
)

// RasterMode selects what a Rasterise attribute accumulates per hit.
type RasterMode int

const (
	PhotonCount RasterMode = iota
	Illuminance
)

// Plane is a 2-D raster over a rectangular region of one axis-aligned plane.
type Plane struct {
	Name       string
	Axis       PlaneAxis
	Mins, Maxs [2]float64 // extents in the plane's own (u, v) coordinates
	Nu, Nv     int
	Mode       RasterMode
	Data       la.Vector
}

// NewPlane builds a zeroed planar raster.
func NewPlane(name string, axis PlaneAxis, mins, maxs [2]float64, nu, nv int, mode RasterMode) *Plane {
	if nu <= 0 || nv <= 0 {
		chk.Panic("out: plane %q dimensions must be positive", name)
	}
	if mins[0] >= maxs[0] || mins[1] >= maxs[1] {
		chk.Panic("out: plane %q requires mins strictly less than maxs", name)
	}
	return &Plane{Name: name, Axis: axis, Mins: mins, Maxs: maxs, Nu: nu, Nv: nv, Mode: mode, Data: la.NewVector(nu * nv)}
}

// Project maps a 3-D position onto the plane's (u, v) coordinates.
func (p *Plane) Project(pos geom.Point3) (u, v float64) {
	switch p.Axis {
	case PlaneXY:
		return pos.X(), pos.Y()
	case PlaneXZ:
		return pos.X(), pos.Z()
	default:
		return pos.Y(), pos.Z()
	}
}

// Index returns the flattened pixel index for a projected (u, v) position,
// or false if it falls outside the plane's extent.
func (p *Plane) Index(u, v float64) (int, bool) {
	if u < p.Mins[0] || u > p.Maxs[0] || v < p.Mins[1] || v > p.Maxs[1] {
		return 0, false
	}
	du := (p.Maxs[0] - p.Mins[0]) / float64(p.Nu)
	dv := (p.Maxs[1] - p.Mins[1]) / float64(p.Nv)
	iu := clampIndex(int((u-p.Mins[0])/du), p.Nu)
	iv := clampIndex(int((v-p.Mins[1])/dv), p.Nv)
	return iv*p.Nu + iu, true
}

// Deposit adds amount at the projected position, a no-op outside the plane.
func (p *Plane) Deposit(pos geom.Point3, amount float64) {
	u, v := p.Project(pos)
	idx, ok := p.Index(u, v)
	if !ok {
		return
	}
	p.Data[idx] += amount
}

// Merge adds another plane's data into p element-wise.
func (p *Plane) Merge(other *Plane) {
	if len(p.Data) != len(other.Data) {
		chk.Panic("out: cannot merge planes %q and %q of different shapes", p.Name, other.Name)
	}
	for i, val := range other.Data {
		p.Data[i] += val
	}
}

// Clone returns a zeroed copy of p with the same shape.
func (p *Plane) Clone() *Plane {
	return NewPlane(p.Name, p.Axis, p.Mins, p.Maxs, p.Nu, p.Nv, p.Mode)
}
