// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/chk"

// Ccd is a spatially and spectrally resolved detector: a 3-D array of
// (x, y, wavelength-bin) accumulators.
type Ccd struct {
	Name       string
	Width      float64
	Res        int
	OrientPos  [3]float64
	OrientUp   [3]float64
	OrientRite [3]float64
	Bins       int
	Data       []float64 // row-major, Res*Res*Bins
}

// NewCcd builds a zeroed CCD.
func NewCcd(name string, width float64, res, bins int, pos, up, right [3]float64) *Ccd {
	if res <= 0 || bins <= 0 {
		chk.Panic("out: ccd %q resolution and bin count must be positive", name)
	}
	if width <= 0 {
		chk.Panic("out: ccd %q width must be positive", name)
	}
	return &Ccd{
		Name: name, Width: width, Res: res, Bins: bins,
		OrientPos: pos, OrientUp: up, OrientRite: right,
		Data: make([]float64, res*res*bins),
	}
}

// Deposit adds amount into the pixel at normalised (x, y) in [0, 1]^2 and
// spectral bin, a no-op outside those bounds.
func (c *Ccd) Deposit(x, y float64, bin int, amount float64) {
	if x < 0 || x > 1 || y < 0 || y > 1 || bin < 0 || bin >= c.Bins {
		return
	}
	ix := clampIndex(int(float64(c.Res)*x), c.Res)
	iy := clampIndex(int(float64(c.Res)*y), c.Res)
	idx := (iy*c.Res+ix)*c.Bins + bin
	c.Data[idx] += amount
}

// Merge adds another CCD's data into c element-wise.
func (c *Ccd) Merge(other *Ccd) {
	if len(c.Data) != len(other.Data) {
		chk.Panic("out: cannot merge ccds %q and %q of different shapes", c.Name, other.Name)
	}
	for i, v := range other.Data {
		c.Data[i] += v
	}
}

// Clone returns a zeroed copy of c with the same shape and orientation.
func (c *Ccd) Clone() *Ccd {
	return NewCcd(c.Name, c.Width, c.Res, c.Bins, c.OrientPos, c.OrientUp, c.OrientRite)
}
