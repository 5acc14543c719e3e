// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/mcrt/geom"
)

// Output is the full set of a scenario's accumulators. Each worker owns an
// exclusive clone; the scheduler folds per-worker Outputs into one total by
// Merge, which is commutative and associative.
type Output struct {
	Vol      []*Volume
	Plane    []*Plane
	Specs    []*Histogram
	Imgs     []*Image
	Ccds     []*Ccd
	PhotCols []*PhotonCollector
	Photos   []*Image
}

// Clone returns a zeroed-out accumulator with the same registered shapes,
// for a worker's exclusive use.
func (o *Output) Clone() *Output {
	clone := &Output{}
	for _, v := range o.Vol {
		clone.Vol = append(clone.Vol, v.Clone())
	}
	for _, p := range o.Plane {
		clone.Plane = append(clone.Plane, p.Clone())
	}
	for _, s := range o.Specs {
		clone.Specs = append(clone.Specs, s.Clone())
	}
	for _, i := range o.Imgs {
		clone.Imgs = append(clone.Imgs, i.Clone())
	}
	for _, c := range o.Ccds {
		clone.Ccds = append(clone.Ccds, c.Clone())
	}
	for _, p := range o.PhotCols {
		clone.PhotCols = append(clone.PhotCols, p.Clone())
	}
	for _, p := range o.Photos {
		clone.Photos = append(clone.Photos, p.Clone())
	}
	return clone
}

// Merge folds other into o in place, matching entries positionally. Safe to
// call repeatedly in any order across workers.
func (o *Output) Merge(other *Output) {
	for i, v := range o.Vol {
		v.Merge(other.Vol[i])
	}
	for i, p := range o.Plane {
		p.Merge(other.Plane[i])
	}
	for i, s := range o.Specs {
		s.Merge(other.Specs[i])
	}
	for i, im := range o.Imgs {
		im.Merge(other.Imgs[i])
	}
	for i, c := range o.Ccds {
		c.Merge(other.Ccds[i])
	}
	for i, p := range o.PhotCols {
		p.Merge(other.PhotCols[i])
	}
	for i, p := range o.Photos {
		p.Merge(other.Photos[i])
	}
}

// VolumesByParam returns every registered volume of the given parameter
// kind, in registration order.
func (o *Output) VolumesByParam(param Parameter) []*Volume {
	var out []*Volume
	for _, v := range o.Vol {
		if v.Param == param {
			out = append(out, v)
		}
	}
	return out
}

// DistToNearestVoxelExit returns the shortest DistToExit over every volume
// the ray's origin currently lies within, or +Inf if it lies within none.
func (o *Output) DistToNearestVoxelExit(ray *geom.Ray) float64 {
	best := math.Inf(1)
	for _, v := range o.Vol {
		if d := v.DistToExit(ray); d < best {
			best = d
		}
	}
	return best
}

// DepositEmission charges amount into every Emission volume containing pos.
func (o *Output) DepositEmission(pos geom.Point3, amount float64) {
	for _, v := range o.VolumesByParam(Emission) {
		v.Deposit(pos, amount)
	}
}

// DepositTravel charges the energy, absorption and shift contributions of a
// single travel step, starting at origin, into the matching volumes.
func (o *Output) DepositTravel(origin geom.Point3, energy, absorption, shift float64) {
	for _, v := range o.VolumesByParam(Energy) {
		v.Deposit(origin, energy)
	}
	for _, v := range o.VolumesByParam(Absorption) {
		v.Deposit(origin, absorption)
	}
	for _, v := range o.VolumesByParam(Shift) {
		v.Deposit(origin, shift)
	}
}
