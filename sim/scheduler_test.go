// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/geom"
	"github.com/cpmech/mcrt/geom/boundary"
	"github.com/cpmech/mcrt/mlight"
	"github.com/cpmech/mcrt/mopt"
	"github.com/cpmech/mcrt/out"
)

func testVacuumScenario(power float64) (*Input, *mlight.Light, *out.Output) {
	box := geom.NewCube(geom.NewPoint3(-1000, -1000, -1000), geom.NewPoint3(1000, 1000, 1000))
	bound := boundary.NewKill(box)
	tree := emptyTree(geom.NewPoint3(-1000, -1000, -1000), geom.NewPoint3(1000, 1000, 1000))
	mat := mopt.NewConstant(mopt.Local{N: 1.0})
	light := mlight.New(power, mlight.Beam{Ray: geom.NewRay(geom.NewPoint3(0, 0, 0), geom.NewDir3(1, 0, 0))}, mlight.PointSpectrum{Wavelength: 500e-9}, mat)

	vol := out.NewVolume("emission", out.Emission, geom.NewPoint3(-1000, -1000, -1000), geom.NewPoint3(1000, 1000, 1000), 1, 1, 1)
	template := &out.Output{Vol: []*out.Volume{vol}}

	settings := NewSettings(50, 10, 1e-6, 1000, 0.0, 5)
	return NewInput(tree, bound, light, nil, settings), light, template
}

func volumeTotal(o *out.Output) float64 {
	total := 0.0
	for i := 0; i < len(o.Vol[0].Data); i++ {
		total += o.Vol[0].Data[i]
	}
	return total
}

func TestRunProcessesExactlyNumPhotPhotons(t *testing.T) {
	input, light, template := testVacuumScenario(10.0)

	result := Run(input, Standard{}, template, nil)

	chk.Float64(t, "emission total", 1e-6, volumeTotal(result), light.Power)
}

func TestRunMultiLightMergesEveryLightsIncrement(t *testing.T) {
	input, _, template := testVacuumScenario(10.0)
	_, lightB, _ := testVacuumScenario(5.0)

	var seen []int
	onIndividual := func(i int, increment *out.Output) {
		seen = append(seen, i)
	}
	input.Settings.OutputIndividualLights = true

	result := RunMultiLight(input, []*mlight.Light{input.Light, lightB}, Standard{}, template, nil, onIndividual)

	chk.Float64(t, "combined total", 1e-6, volumeTotal(result), 15.0)
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("expected per-light callback invoked in order for both lights, got %v", seen)
	}
}
