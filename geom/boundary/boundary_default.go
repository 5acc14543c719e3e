// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !mpi

package boundary

import (
	"math/rand"

	"github.com/cpmech/mcrt/phot"
)

// applyPlatformCondition handles conditions only available in builds tagged
// "mpi". The default build recognises none, so Apply's caller treats the
// condition as unhandled.
func applyPlatformCondition(_ *Boundary, _ *rand.Rand, _ Hit, _ *phot.Photon, _ Condition) bool {
	return false
}
