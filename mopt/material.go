// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mopt implements wavelength-dependent optical materials: the
// refractive index, scattering/absorption/shift coefficients and
// Henyey-Greenstein asymmetry a photon packet experiences inside a medium.
package mopt

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Local is a snapshot of a material's coefficients at one wavelength.
type Local struct {
	N       float64 // refractive index
	MuS     float64 // scattering coefficient
	MuA     float64 // absorption coefficient
	MuShift float64 // Raman/fluorescence shift coefficient
	G       float64 // Henyey-Greenstein asymmetry
}

// InteractionCoeff returns mu = mu_s + mu_a + mu_shift.
func (l Local) InteractionCoeff() float64 { return l.MuS + l.MuA + l.MuShift }

// Albedo returns mu_s / mu.
func (l Local) Albedo() float64 {
	mu := l.InteractionCoeff()
	if mu <= 0 {
		return 0
	}
	return l.MuS / mu
}

// ShiftProb returns the probability that a scattering event is instead a
// Raman/fluorescence shift: mu_shift / (mu_s + mu_shift).
func (l Local) ShiftProb() float64 {
	denom := l.MuS + l.MuShift
	if denom <= 0 {
		return 0
	}
	return l.MuShift / denom
}

// point is one wavelength-indexed control point of a Material.
type point struct {
	wavelength float64
	local      Local
}

// Material is an immutable wavelength -> Local mapping, built from one or
// more control points and linearly interpolated between neighbouring
// wavelengths. NewFromPrms binds its control point through gosl/fun
// parameter lists; NewConstant and NewSpectral take Local values directly.
type Material struct {
	points []point
}

// NewConstant builds a material whose coefficients do not vary with
// wavelength.
func NewConstant(local Local) *Material {
	return &Material{points: []point{{wavelength: 0, local: local}}}
}

// NewFromPrms builds a single control point from a gosl/fun parameter list,
// binding "n", "mu_s", "mu_a", "mu_shift" and "g" by name.
func NewFromPrms(prms fun.Prms) *Material {
	var l Local
	prms.Connect(&l.N, "n", "refractive index")
	prms.Connect(&l.MuS, "mu_s", "scattering coefficient")
	prms.Connect(&l.MuA, "mu_a", "absorption coefficient")
	prms.Connect(&l.MuShift, "mu_shift", "shift coefficient")
	prms.Connect(&l.G, "g", "Henyey-Greenstein asymmetry")
	return NewConstant(l)
}

// NewSpectral builds a material from explicit (wavelength, Local) control
// points, sorted ascending by wavelength. Evaluation outside the spanned
// range clamps to the nearest endpoint.
func NewSpectral(wavelengths []float64, locals []Local) *Material {
	if len(wavelengths) == 0 || len(wavelengths) != len(locals) {
		chk.Panic("mopt: material requires matching, non-empty wavelength/local slices")
	}
	pts := make([]point, len(wavelengths))
	for i := range wavelengths {
		pts[i] = point{wavelength: wavelengths[i], local: locals[i]}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].wavelength < pts[j].wavelength })
	return &Material{points: pts}
}

// At evaluates the material's Local environment at the given wavelength,
// linearly interpolating between the two nearest control points.
func (m *Material) At(wavelength float64) Local {
	pts := m.points
	if len(pts) == 1 {
		return pts[0].local
	}
	if wavelength <= pts[0].wavelength {
		return pts[0].local
	}
	last := pts[len(pts)-1]
	if wavelength >= last.wavelength {
		return last.local
	}

	idx := sort.Search(len(pts), func(i int) bool { return pts[i].wavelength >= wavelength })
	hi := pts[idx]
	lo := pts[idx-1]
	t := (wavelength - lo.wavelength) / (hi.wavelength - lo.wavelength)
	return lerpLocal(lo.local, hi.local, t)
}

func lerpLocal(a, b Local, t float64) Local {
	return Local{
		N:       a.N + t*(b.N-a.N),
		MuS:     a.MuS + t*(b.MuS-a.MuS),
		MuA:     a.MuA + t*(b.MuA-a.MuA),
		MuShift: a.MuShift + t*(b.MuShift-a.MuShift),
		G:       a.G + t*(b.G-a.G),
	}
}
