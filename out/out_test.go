// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/phot"
)

func TestVolumeDepositAndMerge(t *testing.T) {
	mins := geom.NewPoint3(0, 0, 0)
	maxs := geom.NewPoint3(2, 2, 2)
	a := NewVolume("energy", Energy, mins, maxs, 2, 2, 2)
	b := a.Clone()

	a.Deposit(geom.NewPoint3(0.5, 0.5, 0.5), 3.0)
	b.Deposit(geom.NewPoint3(0.5, 0.5, 0.5), 4.0)
	b.Deposit(geom.NewPoint3(1.5, 1.5, 1.5), 2.0)

	a.Merge(b)
	idx, ok := a.Index(geom.NewPoint3(0.5, 0.5, 0.5))
	if !ok {
		t.Fatal("expected index to be found")
	}
	chk.Float64(t, "merged voxel", 1e-12, a.Data[idx], 7.0)
}

func TestVolumeContainsAndOutOfBoundsDepositNoOp(t *testing.T) {
	v := NewVolume("abs", Absorption, geom.NewPoint3(0, 0, 0), geom.NewPoint3(1, 1, 1), 1, 1, 1)
	v.Deposit(geom.NewPoint3(5, 5, 5), 10.0)
	chk.Float64(t, "untouched voxel", 1e-12, v.Data[0], 0.0)
}

func TestHistogramCollectsWithinRangeOnly(t *testing.T) {
	h := NewHistogram("spec", 400e-9, 700e-9, 3)
	h.TryCollectWeight(450e-9, 1.0)
	h.TryCollectWeight(1000e-9, 5.0) // out of range, dropped
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	chk.Float64(t, "total", 1e-12, total, 1.0)
}

func TestOutputMergeIsShapePreserving(t *testing.T) {
	mins := geom.NewPoint3(0, 0, 0)
	maxs := geom.NewPoint3(1, 1, 1)
	o := &Output{Vol: []*Volume{NewVolume("e", Emission, mins, maxs, 1, 1, 1)}}
	clone := o.Clone()
	clone.Vol[0].Deposit(geom.NewPoint3(0.5, 0.5, 0.5), 2.0)
	o.Merge(clone)
	chk.Float64(t, "merged", 1e-12, o.Vol[0].Data[0], 2.0)
}

func TestPhotonCollectorMergeConcatenates(t *testing.T) {
	a := NewPhotonCollector("cam", false)
	b := NewPhotonCollector("cam", false)
	a.Photons = append(a.Photons, phot.Photon{Weight: 1})
	b.Photons = append(b.Photons, phot.Photon{Weight: 1}, phot.Photon{Weight: 1})
	a.Merge(b)
	if len(a.Photons) != 3 {
		t.Fatal("expected merge to concatenate both collectors' photons")
	}
}
