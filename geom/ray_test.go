// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestRayTravelAdvancesPosition(t *testing.T) {
	r := NewRay(NewPoint3(0, 0, 0), NewDir3(1, 0, 0))
	r.Travel(3)
	chk.Float64(t, "x", 1e-12, r.Pos().X(), 3)
}

func TestRayTravelNonPositivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive travel distance")
		}
	}()
	r := NewRay(NewPoint3(0, 0, 0), NewDir3(1, 0, 0))
	r.Travel(0)
}
