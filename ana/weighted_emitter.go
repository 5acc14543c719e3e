// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/mlight"
)

// WeightedEmitter is a set of emission points with unequal weights. Each
// point must be chosen with frequency proportional to its own weight over
// the total, independent of the (always isotropic) emitted direction.
type WeightedEmitter struct {
	Positions []geom.Point3
	Weights   []float64
}

// Init sets the points and their weights.
func (o *WeightedEmitter) Init(positions []geom.Point3, weights []float64) {
	o.Positions = positions
	o.Weights = weights
}

// SampleFrequencies draws numSamples emissions and returns, per point index,
// the fraction of draws that originated there.
func (o WeightedEmitter) SampleFrequencies(rng *rand.Rand, numSamples int) []float64 {
	emitter := mlight.NewWeightedPoints(o.Positions, o.Weights)
	counts := make([]float64, len(o.Positions))

	for i := 0; i < numSamples; i++ {
		ray := emitter.Emit(rng)
		for idx, pos := range o.Positions {
			if ray.Pos() == pos {
				counts[idx]++
				break
			}
		}
	}

	freqs := make([]float64, len(counts))
	for i, c := range counts {
		freqs[i] = c / float64(numSamples)
	}
	return freqs
}

// ExpectedFrequencies is each weight's share of the total weight.
func (o WeightedEmitter) ExpectedFrequencies() []float64 {
	var total float64
	for _, w := range o.Weights {
		total += w
	}
	freqs := make([]float64, len(o.Weights))
	for i, w := range o.Weights {
		freqs[i] = w / total
	}
	return freqs
}

// CheckFrequenciesMatchWeights asserts the sampled frequencies match the
// weights' own proportions within tol.
func (o WeightedEmitter) CheckFrequenciesMatchWeights(tst *testing.T, rng *rand.Rand, numSamples int, tol float64) {
	got := o.SampleFrequencies(rng, numSamples)
	want := o.ExpectedFrequencies()
	chk.Vector(tst, "weighted emitter frequencies", tol, got, want)
}
