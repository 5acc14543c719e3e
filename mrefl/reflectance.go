// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrefl implements the reflectance models surface attributes and
// boundary conditions delegate to when a photon is reflected rather than
// transmitted or killed.
package mrefl

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
)

// Model samples a reflected ray at a hit point given the incident ray and the
// oriented surface normal. It returns false when the photon should instead
// be killed.
type Model interface {
	Reflect(rng *rand.Rand, incidentPos geom.Point3, incidentDir geom.Dir3, side geom.Side) (geom.Ray, bool)
}

// Lambertian is a purely diffuse reflectance: reflected directions are drawn
// sin-weighted over the hemisphere around the hit normal, independent of the
// incoming direction.
type Lambertian struct {
	Albedo float64
}

// Reflect implements Model.
func (l Lambertian) Reflect(rng *rand.Rand, incidentPos geom.Point3, _ geom.Dir3, side geom.Side) (geom.Ray, bool) {
	if rng.Float64() >= l.Albedo {
		return geom.Ray{}, false
	}
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Asin(rng.Float64())
	ray := geom.NewRay(incidentPos, side.Norm())
	ray.Rotate(phi, theta)
	return ray, true
}

// Specular is a mirror-like reflectance: the reflected direction is the
// incident direction reflected about the hit normal.
type Specular struct {
	Albedo float64
}

// Reflect implements Model.
func (s Specular) Reflect(rng *rand.Rand, incidentPos geom.Point3, incidentDir geom.Dir3, side geom.Side) (geom.Ray, bool) {
	if rng.Float64() >= s.Albedo {
		return geom.Ray{}, false
	}
	return geom.NewRay(incidentPos, ReflectAbout(incidentDir, side.Norm())), true
}

// ReflectAbout reflects dir about norm: dir + 2*(norm . -dir)*norm, following
// the standard mirror-reflection formula.
func ReflectAbout(dir geom.Dir3, norm geom.Dir3) geom.Dir3 {
	v := dir.Vec().Add(norm.Scale(2 * norm.Dot(dir.Neg())))
	return geom.DirFromVec3(v)
}

// Composite blends a diffuse and a specular model: with probability
// 1-DiffuseRatio it delegates to Specular, otherwise to Lambertian.
type Composite struct {
	DiffuseAlbedo  float64
	SpecularAlbedo float64
	DiffuseRatio   float64
}

// Reflect implements Model.
func (c Composite) Reflect(rng *rand.Rand, incidentPos geom.Point3, incidentDir geom.Dir3, side geom.Side) (geom.Ray, bool) {
	if rng.Float64() > c.DiffuseRatio {
		return Specular{Albedo: c.SpecularAlbedo}.Reflect(rng, incidentPos, incidentDir, side)
	}
	return Lambertian{Albedo: c.DiffuseAlbedo}.Reflect(rng, incidentPos, incidentDir, side)
}

// New builds a reflectance model from a kind tag, mirroring the JSON5
// config's "kind" discriminated-union convention for model selection
// (builder pipeline concern; kept here as the one seam the core exposes for
// it). Panics on an unknown kind, since that is always a linking-time bug by
// the time it reaches the core.
func New(kind string, params map[string]float64) Model {
	switch kind {
	case "lambertian":
		return Lambertian{Albedo: params["albedo"]}
	case "specular":
		return Specular{Albedo: params["albedo"]}
	case "composite":
		return Composite{
			DiffuseAlbedo:  params["diffuse_albedo"],
			SpecularAlbedo: params["specular_albedo"],
			DiffuseRatio:   params["diffuse_ratio"],
		}
	default:
		chk.Panic("mrefl: unknown reflectance kind %q", kind)
		return nil
	}
}
