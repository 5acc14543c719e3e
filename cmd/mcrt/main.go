// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mcrt is an illustrative driver for the Monte Carlo radiative
// transfer engine: it wires a scene built from its positional arguments
// into a simulation run and reports a summary. The builder/linker pipeline
// that resolves a real JSON5 scene into materials, attributes, lights and
// outputs is a collaborator outside the core engine; this command stands in
// for it with a minimal scenario so the engine can be exercised end to end.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mcrt/ana"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nmcrt -- Monte Carlo radiative transfer engine\n\n")

	flag.Parse()
	if flag.NArg() < 3 {
		chk.Panic("usage: mcrt <input_dir> <output_dir> <params_path>")
	}
	inputDir := flag.Arg(0)
	outputDir := flag.Arg(1)
	paramsPath := flag.Arg(2)

	if _, err := os.Stat(inputDir); err != nil {
		chk.Panic("cannot read input directory %q: %v", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		chk.Panic("cannot create output directory %q: %v", outputDir, err)
	}

	numPhot, power := readParams(paramsPath)

	io.Pf("loading scene from %q\n", inputDir)
	io.Pf("running %d photons (power %g)\n", numPhot, power)

	var scenario ana.IsotropicVacuum
	scenario.Init(power, numPhot)
	result := scenario.Run()

	summaryPath := outputDir + "/summary.txt"
	writeSummary(summaryPath, result)

	io.Pfgreen("done: summary written to %q\n", summaryPath)
}
