// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/chk"

// Settings controls a scenario's worker scheduling and per-photon
// termination parameters. JSON-tagged so a scenario built elsewhere can be
// round-tripped to and from disk trivially; the pipeline that actually does
// so is external.
type Settings struct {
	NumThreads             *int    `json:"num_threads,omitempty"`
	NumPhot                int     `json:"num_phot"`
	BlockSize              int     `json:"block_size"`
	BumpDist               float64 `json:"bump_dist"`
	LoopLimit              uint64  `json:"loop_limit"`
	MinWeight              float64 `json:"min_weight"`
	RouletteBarrels        uint64  `json:"roulette_barrels"`
	OutputIndividualLights bool    `json:"output_individual_lights,omitempty"`
	UIDTracked             bool    `json:"uid_tracked,omitempty"`
	TimeResolved           bool    `json:"time_resolved,omitempty"`
}

// NewSettings builds a validated Settings.
func NewSettings(numPhot, blockSize int, bumpDist float64, loopLimit uint64, minWeight float64, rouletteBarrels uint64) Settings {
	if numPhot <= 0 {
		chk.Panic("sim: num_phot must be positive, got %v", numPhot)
	}
	if blockSize <= 0 {
		chk.Panic("sim: block_size must be positive, got %v", blockSize)
	}
	if bumpDist <= 0 {
		chk.Panic("sim: bump_dist must be positive, got %v", bumpDist)
	}
	if minWeight < 0 {
		chk.Panic("sim: min_weight must be non-negative, got %v", minWeight)
	}
	if rouletteBarrels <= 1 {
		chk.Panic("sim: roulette_barrels must exceed 1, got %v", rouletteBarrels)
	}
	return Settings{
		NumPhot: numPhot, BlockSize: blockSize, BumpDist: bumpDist,
		LoopLimit: loopLimit, MinWeight: minWeight, RouletteBarrels: rouletteBarrels,
	}
}

// RouletteSurviveProb returns 1 / RouletteBarrels.
func (s Settings) RouletteSurviveProb() float64 { return 1.0 / float64(s.RouletteBarrels) }

// ResolvedThreadCount caps NumThreads (if set) at the available CPU count.
func (s Settings) ResolvedThreadCount(availableCPUs int) int {
	if s.NumThreads == nil || *s.NumThreads > availableCPUs {
		return availableCPUs
	}
	if *s.NumThreads < 1 {
		chk.Panic("sim: num_threads must be at least 1, got %v", *s.NumThreads)
	}
	return *s.NumThreads
}
