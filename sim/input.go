// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/attr"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/geom/octree"
	"github.com/cpmech/mcrt/mlight"
)

// Input is the immutable resource set a scheduler hands to every worker:
// shared, read-only for the lifetime of the run.
type Input struct {
	Tree     *octree.Tree
	Bound    *boundary.Boundary
	Light    *mlight.Light
	Attrs    []attr.Attribute
	Settings Settings
}

// NewInput builds a validated Input.
func NewInput(tree *octree.Tree, bound *boundary.Boundary, light *mlight.Light, attrs []attr.Attribute, settings Settings) *Input {
	if tree == nil || bound == nil || light == nil {
		chk.Panic("sim: input requires a non-nil tree, boundary and light")
	}
	return &Input{Tree: tree, Bound: bound, Light: light, Attrs: attrs, Settings: settings}
}
