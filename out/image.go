// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Colour is an RGBA accumulator in linear light.
type Colour struct {
	R, G, B, A float64
}

// WavelengthToColour approximates the visible-spectrum colour of a
// wavelength (given in metres) using the standard piecewise Gaussian-ish
// CIE-inspired approximation; wavelengths outside the visible band are
// black.
func WavelengthToColour(wavelength float64) Colour {
	const gamma = 0.8
	var r, g, b float64

	switch {
	case wavelength >= 380e-9 && wavelength < 440e-9:
		attenuation := 0.3 + 0.7*(wavelength-380e-9)/(440e-9-380e-9)
		r = math.Pow(-(wavelength-440e-9)/(440e-9-380e-9)*attenuation, gamma)
		b = math.Pow(attenuation, gamma)
	case wavelength >= 440e-9 && wavelength < 490e-9:
		g = math.Pow((wavelength-440e-9)/(490e-9-440e-9), gamma)
		b = 1.0
	case wavelength >= 490e-9 && wavelength < 510e-9:
		g = 1.0
		b = math.Pow(-(wavelength-510e-9)/(510e-9-490e-9), gamma)
	case wavelength >= 510e-9 && wavelength < 580e-9:
		r = math.Pow((wavelength-510e-9)/(580e-9-510e-9), gamma)
		g = 1.0
	case wavelength >= 580e-9 && wavelength < 645e-9:
		r = 1.0
		g = math.Pow(-(wavelength-645e-9)/(645e-9-580e-9), gamma)
	case wavelength >= 645e-9 && wavelength < 750e-9:
		attenuation := 0.3 + 0.7*(750e-9-wavelength)/(750e-9-645e-9)
		r = math.Pow(attenuation, gamma)
	}

	return Colour{R: r, G: g, B: b, A: 1.0}
}

// Image is a 2-D RGBA pixel accumulator centred on an orientation frame.
type Image struct {
	Name       string
	Width      float64 // physical width of the imaged square, in scene units
	Res        int     // pixel resolution per side (square image)
	OrientPos  [3]float64
	OrientUp   [3]float64
	OrientRite [3]float64
	Pixels     []Colour // row-major, Res*Res
}

// NewImage builds a zeroed square image.
func NewImage(name string, width float64, res int, pos, up, right [3]float64) *Image {
	if res <= 0 {
		chk.Panic("out: image %q resolution must be positive", name)
	}
	if width <= 0 {
		chk.Panic("out: image %q width must be positive", name)
	}
	return &Image{
		Name: name, Width: width, Res: res,
		OrientPos: pos, OrientUp: up, OrientRite: right,
		Pixels: make([]Colour, res*res),
	}
}

// Deposit adds amount*colour to the pixel at normalised (x, y) in [0, 1]^2,
// a no-op outside that square.
func (img *Image) Deposit(x, y float64, colour Colour, amount float64) {
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return
	}
	ix := clampIndex(int(float64(img.Res)*x), img.Res)
	iy := clampIndex(int(float64(img.Res)*y), img.Res)
	idx := iy*img.Res + ix
	img.Pixels[idx].R += colour.R * amount
	img.Pixels[idx].G += colour.G * amount
	img.Pixels[idx].B += colour.B * amount
}

// Merge adds another image's pixels into img element-wise.
func (img *Image) Merge(other *Image) {
	if len(img.Pixels) != len(other.Pixels) {
		chk.Panic("out: cannot merge images %q and %q of different shapes", img.Name, other.Name)
	}
	for i, c := range other.Pixels {
		img.Pixels[i].R += c.R
		img.Pixels[i].G += c.G
		img.Pixels[i].B += c.B
		img.Pixels[i].A += c.A
	}
}

// Clone returns a zeroed copy of img with the same shape and orientation.
func (img *Image) Clone() *Image {
	return NewImage(img.Name, img.Width, img.Res, img.OrientPos, img.OrientUp, img.OrientRite)
}
