// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand"
	"testing"
)

func TestFresnelSplitMatchesNormalIncidenceFormula(t *testing.T) {
	var sc FresnelSplit
	sc.Init(1.0, 1.5)

	rng := rand.New(rand.NewSource(7))
	sc.CheckReflectProbMatchesFresnelFormula(t, rng, 200000, 0.01)
}
