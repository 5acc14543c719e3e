// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attr

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/phot"
	"github.com/cpmech/mcrt/tools"
)

// Hit is the information the dispatcher needs about a surface collision:
// the distance travelled and the oriented side struck.
type Hit struct {
	Dist float64
	Side geom.Side
}

// Apply resolves a surface collision against the attribute attached to the
// struck triangle, mutating the photon (direction, weight, or killing it)
// and the current Local environment, and depositing into data where the
// attribute is a detector.
func Apply(rng *rand.Rand, a Attribute, hit Hit, p *phot.Photon, env *mopt.Local, data *out.Output) {
	switch v := a.(type) {
	case Interface:
		applyInterface(rng, v, hit, p, env)

	case Mirror:
		p.Weight *= v.Absorption
		p.Ray.SetDir(CalcRefDir(p.Ray.Dir(), hit.Side.Norm()))

	case Reflector:
		ray, ok := v.Model.Reflect(rng, p.Ray.Pos(), p.Ray.Dir(), hit.Side)
		if !ok {
			p.Kill()
			return
		}
		p.Ray = ray

	case Spectrometer:
		data.Specs[v.ID].TryCollectWeight(p.Wavelength, p.Weight)
		p.Kill()

	case Imager:
		applyImager(data.Imgs[v.ID], v.Width, v.Orient, p)

	case Ccd:
		applyCcd(data.Ccds[v.ID], v.Width, v.Orient, v.Binner, p)

	case PhotonCollector:
		if hit.Side.IsInside() {
			return
		}
		data.PhotCols[v.ID].Collect(p)

	case Chain:
		for _, sub := range v.Attrs {
			Apply(rng, sub, hit, p, env, data)
		}

	case Rasterise:
		applyRasterise(v.Rasteriser, data, p)

	case Hyperspectral:
		applyHyperspectral(v, data, p)

	default:
		chk.Panic("attr: unhandled attribute type %T", a)
	}
}

func applyInterface(rng *rand.Rand, v Interface, hit Hit, p *phot.Photon, env *mopt.Local) {
	currMat, nextMat := v.In, v.Out
	if !hit.Side.IsInside() {
		currMat, nextMat = v.Out, v.In
	}

	currEnv := currMat.At(p.Wavelength)
	nextEnv := nextMat.At(p.Wavelength)

	crossing := NewCrossing(p.Ray.Dir(), hit.Side.Norm(), currEnv.N, nextEnv.N)

	if rng.Float64() <= crossing.RefProb() {
		p.Ray.SetDir(crossing.RefDir())
		return
	}
	transDir, ok := crossing.TransDir()
	if !ok {
		chk.Panic("attr: refraction selected under total internal reflection")
	}
	p.Ray.SetDir(transDir)
	*env = nextEnv
}

func applyImager(img *out.Image, width float64, orient Orientation, p *phot.Photon) {
	x, y, ok := projectOntoOrientation(orient, width, p.Ray.Pos())
	if ok {
		colour := out.WavelengthToColour(p.Wavelength)
		img.Deposit(x, y, colour, p.Weight*p.Power)
	}
	p.Kill()
}

func applyCcd(ccd *out.Ccd, width float64, orient Orientation, binner tools.Binner, p *phot.Photon) {
	x, y, ok := projectOntoOrientation(orient, width, p.Ray.Pos())
	if ok {
		if bin, inRange := binner.TryBin(p.Wavelength); inRange {
			ccd.Deposit(x, y, bin, p.Weight*p.Power)
		}
	}
	p.Kill()
}

// projectOntoOrientation projects pos into an orientation's (right, up)
// plane, normalised to [0, 1]^2 over a square that extends width on each
// side of the orientation's position.
func projectOntoOrientation(orient Orientation, width float64, pos geom.Point3) (x, y float64, ok bool) {
	projection := orient.Pos.Sub(pos)
	x = (orient.Right.DotVec(projection)/width + 1) / 2
	y = (orient.Up.DotVec(projection)/width + 1) / 2
	return x, y, x >= 0 && x <= 1 && y >= 0 && y <= 1
}

func applyRasterise(r Rasteriser, data *out.Output, p *phot.Photon) {
	plane := data.Plane[r.ID]
	var amount float64
	switch r.Mode {
	case PhotonCount:
		amount = p.Weight
	default:
		amount = p.Weight * p.Power * r.Transmission.At(p.Wavelength)
	}
	plane.Deposit(p.Ray.Pos(), amount)
}

// applyHyperspectral accumulates power density into the (x, y, wavelength)
// voxel of a hyperspectral volume, where the volume's own axes already
// encode the projected pixel area and the spectral bin width: dividing by
// its voxel volume is dividing by (projected_pixel_area * spectral_bin_size)
// in one step.
func applyHyperspectral(v Hyperspectral, data *out.Output, p *phot.Photon) {
	vol := data.Vol[v.VolumeID]

	var x, y float64
	switch v.Axis {
	case PlaneXY:
		x, y = p.Ray.Pos().X(), p.Ray.Pos().Y()
	case PlaneXZ:
		x, y = p.Ray.Pos().X(), p.Ray.Pos().Z()
	default:
		x, y = p.Ray.Pos().Y(), p.Ray.Pos().Z()
	}
	loc := geom.NewPoint3(x, y, p.Wavelength)

	idx, ok := vol.Index(loc)
	if !ok {
		return
	}
	vol.Data[idx] += p.Power * p.Weight / vol.VoxelVolume()
}
