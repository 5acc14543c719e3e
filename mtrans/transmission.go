// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mtrans implements photometric transmission curves: wavelength ->
// relative-response functions such as the Judd-Vos luminous efficacy curve,
// used by illuminance-mode rasterisers to weight collected power.
package mtrans

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Transmission is a piecewise-linear spectral response curve, sampled at a
// set of (wavelength, value) control points sorted ascending by wavelength.
// Evaluation outside the control range clamps to the nearest endpoint.
type Transmission struct {
	wavelengths []float64
	values      []float64
}

// NewTransmission builds a transmission curve from parallel, non-empty
// (wavelength, value) slices. The caller's data need not be pre-sorted.
func NewTransmission(wavelengths, values []float64) *Transmission {
	if len(wavelengths) == 0 || len(wavelengths) != len(values) {
		chk.Panic("mtrans: transmission curve requires matching, non-empty wavelength/value slices")
	}
	idx := make([]int, len(wavelengths))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return wavelengths[idx[i]] < wavelengths[idx[j]] })

	t := &Transmission{wavelengths: make([]float64, len(idx)), values: make([]float64, len(idx))}
	for i, j := range idx {
		t.wavelengths[i] = wavelengths[j]
		t.values[i] = values[j]
	}
	return t
}

// At linearly interpolates the curve's value at wavelength, clamping to the
// nearest endpoint outside the control range.
func (t *Transmission) At(wavelength float64) float64 {
	if wavelength <= t.wavelengths[0] {
		return t.values[0]
	}
	last := len(t.wavelengths) - 1
	if wavelength >= t.wavelengths[last] {
		return t.values[last]
	}

	idx := sort.SearchFloat64s(t.wavelengths, wavelength)
	hi := idx
	lo := idx - 1
	span := t.wavelengths[hi] - t.wavelengths[lo]
	frac := (wavelength - t.wavelengths[lo]) / span
	return t.values[lo] + frac*(t.values[hi]-t.values[lo])
}

// JuddVos1978 returns a coarse approximation of the Judd-Vos (1978)
// modified photopic luminous efficacy curve, sampled at its characteristic
// peak near 555nm and tailing off towards the visible band edges. Real
// builder pipelines load the full tabulated CSV; this in-memory curve is
// the core's own default when no external table is supplied.
func JuddVos1978() *Transmission {
	return NewTransmission(
		[]float64{380e-9, 420e-9, 460e-9, 500e-9, 540e-9, 555e-9, 580e-9, 620e-9, 660e-9, 700e-9, 740e-9, 780e-9},
		[]float64{0.0001, 0.0040, 0.0600, 0.3230, 0.9100, 1.0000, 0.8700, 0.3810, 0.0610, 0.0041, 0.0001, 0.0000},
	)
}
