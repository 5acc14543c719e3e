// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tools implements small supporting utilities shared by the engine:
// a (range, N) value binner and scheduler progress reporting.
package tools

import "github.com/cpmech/gosl/chk"

// Binner maps a value in [Min, Max) to one of N equal-width bins.
type Binner struct {
	Min, Max float64
	N        int
}

// NewBinner builds a binner. N must be positive and Min strictly less than
// Max; a zero-width binner is an invariant violation, not a recoverable
// condition.
func NewBinner(min, max float64, n int) Binner {
	if n <= 0 {
		chk.Panic("tools: binner bin count must be positive, got %v", n)
	}
	if min >= max {
		chk.Panic("tools: binner requires min strictly less than max")
	}
	return Binner{Min: min, Max: max, N: n}
}

// Width returns the width of a single bin.
func (b Binner) Width() float64 { return (b.Max - b.Min) / float64(b.N) }

// TryBin returns the bin index containing value, or false if value falls
// outside [Min, Max).
func (b Binner) TryBin(value float64) (int, bool) {
	if value < b.Min || value >= b.Max {
		return 0, false
	}
	idx := int((value - b.Min) / b.Width())
	if idx >= b.N {
		idx = b.N - 1
	}
	return idx, true
}
