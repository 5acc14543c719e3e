// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the simulation's output accumulators: volumetric
// grids, planar rasters, spectrometers, images, hyperspectral CCDs and
// photon collectors, all mergeable by element-wise or concatenating +=.
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/mcrt/geom"
)

// Parameter names which physical quantity a Volume accumulates.
type Parameter int

const (
	Emission Parameter = iota
	Energy
	Absorption
	Shift
	Hyperspectral
)

// Volume is a regular 3-D grid of float64 voxels backed by a flattened
// gosl/la vector, covering the box [Mins, Maxs] with Nx*Ny*Nz cells.
type Volume struct {
	Name       string
	Param      Parameter
	Mins, Maxs geom.Point3
	Nx, Ny, Nz int
	Data       la.Vector
}

// NewVolume builds a zeroed volume. Every dimension must be positive and
// Mins strictly less than Maxs on every axis.
func NewVolume(name string, param Parameter, mins, maxs geom.Point3, nx, ny, nz int) *Volume {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		chk.Panic("out: volume %q dimensions must be positive", name)
	}
	if mins.X() >= maxs.X() || mins.Y() >= maxs.Y() || mins.Z() >= maxs.Z() {
		chk.Panic("out: volume %q requires mins strictly less than maxs on every axis", name)
	}
	return &Volume{
		Name: name, Param: param, Mins: mins, Maxs: maxs,
		Nx: nx, Ny: ny, Nz: nz, Data: la.NewVector(nx * ny * nz),
	}
}

// voxelSize returns the edge lengths of one voxel.
func (v *Volume) voxelSize() (dx, dy, dz float64) {
	dx = (v.Maxs.X() - v.Mins.X()) / float64(v.Nx)
	dy = (v.Maxs.Y() - v.Mins.Y()) / float64(v.Ny)
	dz = (v.Maxs.Z() - v.Mins.Z()) / float64(v.Nz)
	return
}

// VoxelVolume returns the volume of a single voxel.
func (v *Volume) VoxelVolume() float64 {
	dx, dy, dz := v.voxelSize()
	return dx * dy * dz
}

// Contains reports whether pos falls within the volume's bounding box.
func (v *Volume) Contains(pos geom.Point3) bool {
	return pos.X() >= v.Mins.X() && pos.X() <= v.Maxs.X() &&
		pos.Y() >= v.Mins.Y() && pos.Y() <= v.Maxs.Y() &&
		pos.Z() >= v.Mins.Z() && pos.Z() <= v.Maxs.Z()
}

// Index returns the flattened voxel index containing pos, or false if pos
// lies outside the volume.
func (v *Volume) Index(pos geom.Point3) (int, bool) {
	if !v.Contains(pos) {
		return 0, false
	}
	dx, dy, dz := v.voxelSize()
	ix := clampIndex(int((pos.X()-v.Mins.X())/dx), v.Nx)
	iy := clampIndex(int((pos.Y()-v.Mins.Y())/dy), v.Ny)
	iz := clampIndex(int((pos.Z()-v.Mins.Z())/dz), v.Nz)
	return (iz*v.Ny+iy)*v.Nx + ix, true
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// DistToExit returns the distance along ray to the nearest voxel boundary
// crossing from the voxel currently containing its origin, or +Inf if the
// origin is outside the volume.
func (v *Volume) DistToExit(ray *geom.Ray) float64 {
	pos := ray.Pos()
	if !v.Contains(pos) {
		return math.Inf(1)
	}
	dx, dy, dz := v.voxelSize()
	ix := clampIndex(int((pos.X()-v.Mins.X())/dx), v.Nx)
	iy := clampIndex(int((pos.Y()-v.Mins.Y())/dy), v.Ny)
	iz := clampIndex(int((pos.Z()-v.Mins.Z())/dz), v.Nz)

	cellMin := geom.NewPoint3(v.Mins.X()+float64(ix)*dx, v.Mins.Y()+float64(iy)*dy, v.Mins.Z()+float64(iz)*dz)
	cellMax := geom.NewPoint3(cellMin.X()+dx, cellMin.Y()+dy, cellMin.Z()+dz)
	cell := geom.NewCube(cellMin, cellMax)

	dist, ok := cell.Dist(ray)
	if !ok {
		return math.Inf(1)
	}
	return dist
}

// Deposit adds amount to the voxel containing pos, a no-op if pos is
// outside the volume.
func (v *Volume) Deposit(pos geom.Point3, amount float64) {
	idx, ok := v.Index(pos)
	if !ok {
		return
	}
	v.Data[idx] += amount
}

// Merge adds another volume's data into v element-wise. Both volumes must
// share the same shape.
func (v *Volume) Merge(other *Volume) {
	if len(v.Data) != len(other.Data) {
		chk.Panic("out: cannot merge volumes %q and %q of different shapes", v.Name, other.Name)
	}
	for i, val := range other.Data {
		v.Data[i] += val
	}
}

// Clone returns a zeroed copy of v with the same shape and parameter, for a
// worker's exclusive accumulator.
func (v *Volume) Clone() *Volume {
	return NewVolume(v.Name, v.Param, v.Mins, v.Maxs, v.Nx, v.Ny, v.Nz)
}
