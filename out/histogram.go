// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/chk"

// Histogram is a spectrometer: a (range, N) binner over wavelength with one
// weight accumulator per bin.
type Histogram struct {
	Name     string
	Min, Max float64
	Counts   []float64
}

// NewHistogram builds a zeroed histogram. n must be positive and min
// strictly less than max.
func NewHistogram(name string, min, max float64, n int) *Histogram {
	if n <= 0 {
		chk.Panic("out: histogram %q bin count must be positive", name)
	}
	if min >= max {
		chk.Panic("out: histogram %q requires min strictly less than max", name)
	}
	return &Histogram{Name: name, Min: min, Max: max, Counts: make([]float64, n)}
}

// TryCollectWeight deposits weight into the bin containing wavelength, a
// no-op when wavelength falls outside [Min, Max).
func (h *Histogram) TryCollectWeight(wavelength, weight float64) {
	if wavelength < h.Min || wavelength >= h.Max {
		return
	}
	width := (h.Max - h.Min) / float64(len(h.Counts))
	idx := clampIndex(int((wavelength-h.Min)/width), len(h.Counts))
	h.Counts[idx] += weight
}

// Merge adds another histogram's counts into h element-wise.
func (h *Histogram) Merge(other *Histogram) {
	if len(h.Counts) != len(other.Counts) {
		chk.Panic("out: cannot merge histograms %q and %q of different shapes", h.Name, other.Name)
	}
	for i, c := range other.Counts {
		h.Counts[i] += c
	}
}

// Clone returns a zeroed copy of h with the same binning.
func (h *Histogram) Clone() *Histogram {
	return NewHistogram(h.Name, h.Min, h.Max, len(h.Counts))
}
