// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attr implements the surface-attribute dispatcher: the tagged
// variant attached to a hit triangle that decides how a photon's encounter
// with a surface is resolved (dielectric interface, mirror, reflector,
// detectors, rasterisers, and their chain composite).
package attr

import (
	"math"

	"github.com/cpmech/mcrt/geom"
)

// Crossing computes the Fresnel reflection/transmission split and the
// resulting directions at a dielectric interface.
type Crossing struct {
	refProb  float64
	refDir   geom.Dir3
	transDir geom.Dir3
	hasTrans bool
}

// NewCrossing builds a crossing from the incoming ray direction, the
// inward-oriented hit normal, and the refractive indices on the near
// (current) and far (next) sides. inc.Dot(norm) must be negative (norm
// points back towards the incoming ray).
func NewCrossing(inc, norm geom.Dir3, nCurr, nNext float64) Crossing {
	ci := -inc.Dot(norm)
	n := nCurr / nNext

	totalInternal := false
	if nCurr > nNext {
		critAngle := math.Asin(nNext / nCurr)
		if math.Acos(ci) >= critAngle {
			totalInternal = true
		}
	}

	refDir := reflectDir(inc, norm, ci)

	if totalInternal {
		return Crossing{refProb: 1.0, refDir: refDir}
	}

	s2t := (n * n) * (1 - ci*ci)
	ct := math.Sqrt(1 - s2t)

	refProb := fresnelReflectProb(nCurr, nNext, ci, ct)
	transDir := transmitDir(inc, norm, n, ci, ct)

	return Crossing{refProb: refProb, refDir: refDir, transDir: transDir, hasTrans: true}
}

// RefProb returns the Fresnel reflection probability.
func (c Crossing) RefProb() float64 { return c.refProb }

// TransProb returns the Fresnel transmission probability.
func (c Crossing) TransProb() float64 { return 1 - c.refProb }

// RefDir returns the reflection direction.
func (c Crossing) RefDir() geom.Dir3 { return c.refDir }

// TransDir returns the transmission (refraction) direction and whether one
// exists (false under total internal reflection).
func (c Crossing) TransDir() (geom.Dir3, bool) { return c.transDir, c.hasTrans }

func fresnelReflectProb(n1, n2, ci, ct float64) float64 {
	n1ci := n1 * ci
	n2ct := n2 * ct
	rNormSqrt := (n1ci - n2ct) / (n1ci + n2ct)
	rNorm := rNormSqrt * rNormSqrt

	n2ci := n2 * ci
	n1ct := n1 * ct
	rTranSqrt := (n2ci - n1ct) / (n2ci + n1ct)
	rTran := rTranSqrt * rTranSqrt

	return (rNorm + rTran) / 2
}

func reflectDir(inc, norm geom.Dir3, ci float64) geom.Dir3 {
	v := inc.Vec().Add(norm.Scale(2 * ci))
	return geom.DirFromVec3(v)
}

// CalcRefDir computes the mirror-reflection direction of inc about norm,
// deriving its own cosine of incidence.
func CalcRefDir(inc, norm geom.Dir3) geom.Dir3 {
	return reflectDir(inc, norm, -inc.Dot(norm))
}

func transmitDir(inc, norm geom.Dir3, n, ci, ct float64) geom.Dir3 {
	v := inc.Vec().Mul(n).Add(norm.Scale(n*ci - ct))
	return geom.DirFromVec3(v)
}
