// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/mcrt/phot"

// PhotonCollector accumulates full photon snapshots for later persistence
// (pos, dir, wavelength, power, weight, tof, uid). Kill selects whether
// collecting a photon also kills it; killing is the collector's own
// option, not the dispatcher's.
type PhotonCollector struct {
	Name    string
	Kill    bool
	Photons []phot.Photon
}

// NewPhotonCollector builds an empty collector.
func NewPhotonCollector(name string, kill bool) *PhotonCollector {
	return &PhotonCollector{Name: name, Kill: kill}
}

// Collect appends a snapshot of p, then kills p if c.Kill is set.
func (c *PhotonCollector) Collect(p *phot.Photon) {
	c.Photons = append(c.Photons, *p)
	if c.Kill {
		p.Kill()
	}
}

// Merge concatenates another collector's photons onto c.
func (c *PhotonCollector) Merge(other *PhotonCollector) {
	c.Photons = append(c.Photons, other.Photons...)
}

// Clone returns an empty collector with the same name and kill setting.
func (c *PhotonCollector) Clone() *PhotonCollector {
	return NewPhotonCollector(c.Name, c.Kill)
}
