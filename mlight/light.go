// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mlight implements the photon emitters (Light) that bind an
// emitting geometry to a spectrum and a material.
package mlight

import (
	"math"
	"math/rand"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/phot"
)

// Emitter produces a (position, direction) ray for a new photon.
type Emitter interface {
	Emit(rng *rand.Rand) geom.Ray
}

// Light binds an emitter to a spectrum and the material a photon starts in.
type Light struct {
	Power   float64
	Emitter Emitter
	Spec    SpectrumSampler
	Mat     *mopt.Material
}

// SpectrumSampler draws a wavelength for an emitted photon.
type SpectrumSampler interface {
	Sample(rng *rand.Rand) float64
}

// PointSpectrum always returns the same wavelength (a monochromatic source).
type PointSpectrum struct {
	Wavelength float64
}

// Sample implements SpectrumSampler.
func (p PointSpectrum) Sample(*rand.Rand) float64 { return p.Wavelength }

// New builds a light. power must be strictly positive.
func New(power float64, emitter Emitter, spec SpectrumSampler, mat *mopt.Material) *Light {
	if power <= 0 {
		chk.Panic("mlight: light power must be positive, got %v", power)
	}
	return &Light{Power: power, Emitter: emitter, Spec: spec, Mat: mat}
}

// Emit draws a new photon with the given per-photon power.
func (l *Light) Emit(rng *rand.Rand, power float64) phot.Photon {
	if power <= 0 {
		chk.Panic("mlight: per-photon power must be positive, got %v", power)
	}
	ray := l.Emitter.Emit(rng)
	wavelength := l.Spec.Sample(rng)
	return phot.New(ray, wavelength, power)
}

// Beam emits every photon along the same fixed ray.
type Beam struct {
	Ray geom.Ray
}

// Emit implements Emitter.
func (b Beam) Emit(*rand.Rand) geom.Ray { return b.Ray }

// isotropicDir draws a uniformly distributed direction over the full sphere.
func isotropicDir(rng *rand.Rand) geom.Dir3 {
	cosTheta := 2*rng.Float64() - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := 2 * math.Pi * rng.Float64()
	return geom.NewDir3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// Points emits from a uniformly chosen point among a fixed set, with an
// isotropic direction.
type Points struct {
	Positions []geom.Point3
}

// Emit implements Emitter.
func (p Points) Emit(rng *rand.Rand) geom.Ray {
	if len(p.Positions) == 0 {
		chk.Panic("mlight: points emitter has no positions")
	}
	idx := rng.Intn(len(p.Positions))
	return geom.NewRay(p.Positions[idx], isotropicDir(rng))
}

// WeightedPoints emits from a set of points chosen by cumulative-weight
// sampling, with an isotropic direction.
type WeightedPoints struct {
	Positions  []geom.Point3
	Weights    []float64
	cumulative []float64
	total      float64
}

// NewWeightedPoints builds a weighted-point emitter, precomputing the
// cumulative-weight table used for sampling.
func NewWeightedPoints(positions []geom.Point3, weights []float64) *WeightedPoints {
	if len(positions) == 0 || len(positions) != len(weights) {
		chk.Panic("mlight: weighted points emitter requires matching, non-empty positions/weights")
	}
	cum := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return &WeightedPoints{Positions: positions, Weights: weights, cumulative: cum, total: total}
}

// Emit implements Emitter.
func (w *WeightedPoints) Emit(rng *rand.Rand) geom.Ray {
	target := rng.Float64() * w.total
	idx := sort.Search(len(w.cumulative), func(i int) bool { return w.cumulative[i] >= target })
	if idx == len(w.cumulative) {
		idx = len(w.cumulative) - 1
	}
	return geom.NewRay(w.Positions[idx], isotropicDir(rng))
}

// Surface emits from a uniformly area-weighted point on a triangulated mesh,
// with the interpolated surface normal as direction.
type Surface struct {
	Mesh *geom.Mesh
}

// Emit implements Emitter.
func (s Surface) Emit(rng *rand.Rand) geom.Ray {
	return s.Mesh.Cast(rng.Float64)
}

// VolumeMap emits from a regular 3-D grid of emission weights, sampling a
// voxel by cumulative weight and a uniform random position within it, with
// an isotropic direction.
type VolumeMap struct {
	Mins, Maxs geom.Point3
	Nx, Ny, Nz int
	Weights    []float64 // flattened, row-major x, then y, then z
	cumulative []float64
	total      float64
}

// NewVolumeMap builds a volumetric emitter over the given grid.
func NewVolumeMap(mins, maxs geom.Point3, nx, ny, nz int, weights []float64) *VolumeMap {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("mlight: volume map dimensions must be positive")
	}
	if len(weights) != nx*ny*nz {
		chk.Panic("mlight: volume map weights length must equal nx*ny*nz")
	}
	cum := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return &VolumeMap{Mins: mins, Maxs: maxs, Nx: nx, Ny: ny, Nz: nz, Weights: weights, cumulative: cum, total: total}
}

// Emit implements Emitter.
func (v *VolumeMap) Emit(rng *rand.Rand) geom.Ray {
	target := rng.Float64() * v.total
	idx := sort.Search(len(v.cumulative), func(i int) bool { return v.cumulative[i] >= target })
	if idx == len(v.cumulative) {
		idx = len(v.cumulative) - 1
	}
	iz := idx / (v.Nx * v.Ny)
	rem := idx % (v.Nx * v.Ny)
	iy := rem / v.Nx
	ix := rem % v.Nx

	dx := (v.Maxs.X() - v.Mins.X()) / float64(v.Nx)
	dy := (v.Maxs.Y() - v.Mins.Y()) / float64(v.Ny)
	dz := (v.Maxs.Z() - v.Mins.Z()) / float64(v.Nz)

	pos := geom.NewPoint3(
		v.Mins.X()+dx*(float64(ix)+rng.Float64()),
		v.Mins.Y()+dy*(float64(iy)+rng.Float64()),
		v.Mins.Z()+dz*(float64(iz)+rng.Float64()),
	)
	return geom.NewRay(pos, isotropicDir(rng))
}

// PhotometricWeb is a non-isotropic point source whose angular emission
// profile is given by a spherical CDF derived from measured luminous
// intensity samples (an IES photometric web). The CDF is tabulated at
// construction time; each Emit call binary-searches the table for the
// bracketing samples and interpolates cos(theta) linearly between them.
type PhotometricWeb struct {
	Pos      geom.Point3
	cosTheta []float64 // ascending, cos(theta) sample grid
	cdf      []float64 // ascending CDF values matching cosTheta
}

// NewPhotometricWeb builds the inverse-CDF sampler from intensity(theta)
// samples given as parallel (cosTheta, intensity) slices, both covering
// [-1, 1] ascending in cosTheta. Intensity is integrated into a cumulative
// distribution by the trapezoidal rule over the sample grid.
func NewPhotometricWeb(pos geom.Point3, cosTheta, intensity []float64) *PhotometricWeb {
	if len(cosTheta) < 2 || len(cosTheta) != len(intensity) {
		chk.Panic("mlight: photometric web requires matching, >=2-sample cosTheta/intensity slices")
	}
	cdf := make([]float64, len(cosTheta))
	for i := 1; i < len(cosTheta); i++ {
		width := cosTheta[i] - cosTheta[i-1]
		avg := 0.5 * (intensity[i] + intensity[i-1])
		cdf[i] = cdf[i-1] + width*avg
	}
	total := cdf[len(cdf)-1]
	if total <= 0 {
		chk.Panic("mlight: photometric web intensity integrates to zero")
	}
	for i := range cdf {
		cdf[i] /= total
	}
	return &PhotometricWeb{Pos: pos, cosTheta: cosTheta, cdf: cdf}
}

// Emit implements Emitter.
func (w *PhotometricWeb) Emit(rng *rand.Rand) geom.Ray {
	target := rng.Float64()
	idx := sort.Search(len(w.cdf), func(i int) bool { return w.cdf[i] >= target })
	if idx == 0 {
		idx = 1
	}
	if idx >= len(w.cdf) {
		idx = len(w.cdf) - 1
	}
	lo, hi := idx-1, idx
	span := w.cdf[hi] - w.cdf[lo]
	var t float64
	if span > 0 {
		t = (target - w.cdf[lo]) / span
	}
	cosTheta := w.cosTheta[lo] + t*(w.cosTheta[hi]-w.cosTheta[lo])
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * rng.Float64()

	dir := geom.NewDir3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return geom.NewRay(w.Pos, dir)
}
