// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "testing"

func TestIsotropicVacuumConservesEnergyWithNoAbsorption(t *testing.T) {
	var sc IsotropicVacuum
	sc.Init(100.0, 2000)

	result := sc.Run()
	sc.CheckNoAbsorptionAndFullEmission(t, result, 1e-6)
}
