// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/mcrt/geom"
)

func TestPeriodicWrapReentersAtOppositeFace(t *testing.T) {
	var sc PeriodicWrap
	sc.Init(geom.NewPoint3(0, 0, 0), geom.NewPoint3(6, 8, 10), 0.01)

	pos := geom.NewPoint3(5, 5, 9.98)
	dir := geom.NewDir3(0, 0, 1)
	expected := geom.NewPoint3(5, 5, 0.01)

	sc.CheckWrapsToOppositeFaceUnchangedDirection(t, pos, dir, expected, 1e-9)
}
