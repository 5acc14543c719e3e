// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mcrt/out"
)

// readParams reads a minimal key=value parameter file, standing in for the
// JSON5 scene/settings the real builder/linker pipeline would resolve.
// Recognised keys: num_phot, power. Both default to a small demo value when
// absent, since this command only illustrates wiring the engine end to end.
func readParams(path string) (numPhot int, power float64) {
	numPhot, power = 1000, 1.0

	f, err := os.Open(path)
	if err != nil {
		chk.Panic("cannot read params file %q: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "num_phot":
			if n, err := strconv.Atoi(value); err == nil {
				numPhot = n
			}
		case "power":
			if p, err := strconv.ParseFloat(value, 64); err == nil {
				power = p
			}
		}
	}
	return numPhot, power
}

// writeSummary writes a one-line-per-volume total to path.
func writeSummary(path string, result *out.Output) {
	f, err := os.Create(path)
	if err != nil {
		chk.Panic("cannot write summary %q: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, v := range result.Vol {
		var total float64
		for _, val := range v.Data {
			total += val
		}
		w.WriteString(v.Name + ": " + strconv.FormatFloat(total, 'g', -1, 64) + "\n")
	}
}
