// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"

	"github.com/cpmech/mcrt/geom"
)

func TestWeightedEmitterMatchesWeightRatios(t *testing.T) {
	var sc WeightedEmitter
	sc.Init([]geom.Point3{
		geom.NewPoint3(0, 0, 0),
		geom.NewPoint3(1, 0, 0),
		geom.NewPoint3(2, 0, 0),
	}, []float64{1, 2, 3})

	rng := rand.New(rand.NewSource(3))
	sc.CheckFrequenciesMatchWeights(t, rng, 600000, 0.01)
}
