// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/mrefl"
	"github.com/cpmech/mcrt/mtrans"
	"github.com/cpmech/mcrt/tools"
)

// Attribute is the physics tag attached to a triangle, selecting which
// surface rule applies at a hit. The set is closed and stable: Interface,
// Mirror, Reflector, Spectrometer, Imager, Ccd, PhotonCollector, Rasterise,
// Hyperspectral, and the Chain composite.
type Attribute interface {
	isAttribute()
}

// Orientation anchors a detector's (right, up) image plane at a position.
type Orientation struct {
	Pos       geom.Point3
	Up, Right geom.Dir3
}

// Interface is a dielectric boundary between two materials.
type Interface struct {
	In, Out *mopt.Material
}

func (Interface) isAttribute() {}

// Mirror reflects with a fixed per-hit absorption factor.
type Mirror struct {
	Absorption float64
}

func (Mirror) isAttribute() {}

// Reflector delegates to a reflectance model.
type Reflector struct {
	Model mrefl.Model
}

func (Reflector) isAttribute() {}

// Spectrometer deposits weight into a named histogram bin and kills the
// photon.
type Spectrometer struct {
	ID int
}

func (Spectrometer) isAttribute() {}

// Imager projects onto an orientation's image plane and kills the photon.
type Imager struct {
	ID     int
	Width  float64
	Orient Orientation
}

func (Imager) isAttribute() {}

// Ccd is an Imager additionally resolved by wavelength bin.
type Ccd struct {
	ID     int
	Width  float64
	Orient Orientation
	Binner tools.Binner
}

func (Ccd) isAttribute() {}

// PhotonCollector appends a snapshot of the photon when struck from
// outside; killing is the collector's own option, not the kernel's.
type PhotonCollector struct {
	ID int
}

func (PhotonCollector) isAttribute() {}

// Rasteriser projects onto a named plane, accumulating either raw photon
// count or illuminance (weighted by a transmission curve).
type Rasteriser struct {
	ID           int
	Mode         RasterMode
	Transmission *mtrans.Transmission // nil in PhotonCount mode
}

// RasterMode selects what a Rasterise attribute accumulates per hit.
type RasterMode int

const (
	PhotonCount RasterMode = iota
	Illuminance
)

// Rasterise is the attribute variant invoking a Rasteriser.
type Rasterise struct {
	Rasteriser Rasteriser
}

func (Rasterise) isAttribute() {}

// Hyperspectral projects a photon onto an axis-aligned plane and
// accumulates power density into a (x, y, wavelength) volume voxel.
type Hyperspectral struct {
	VolumeID int
	Axis     PlaneAxis
}

// PlaneAxis names the axis-aligned plane a projection is made onto.
type PlaneAxis int

const (
	PlaneXY PlaneAxis = iota
	PlaneXZ
	PlaneYZ
)

func (Hyperspectral) isAttribute() {}

// Chain invokes each sub-attribute in order against the same hit. This is
// the set's only self-referential variant, expressed as an indirection
// (a slice of Attribute) rather than intrusive inheritance.
type Chain struct {
	Attrs []Attribute
}

func (Chain) isAttribute() {}
