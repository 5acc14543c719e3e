// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mcrt/mlight"
	"github.com/cpmech/mcrt/out"
	"github.com/cpmech/mcrt/tools"
)

// Run drives a full single-light scenario to completion: workers pull
// contiguous blocks of photon indices from a shared atomic counter, each
// emitting, optionally ledger-tracking and time-resolving, then handing the
// photon to kernel. Per-worker accumulators, cloned from template, are
// folded into one total once every block has been claimed.
func Run(input *Input, kernel Kernel, template *out.Output, ledger *Ledger) *out.Output {
	numWorkers := input.Settings.ResolvedThreadCount(runtime.NumCPU())
	numPhot := uint64(input.Settings.NumPhot)
	blockSize := uint64(input.Settings.BlockSize)
	photEnergy := input.Light.Power / float64(input.Settings.NumPhot)

	var nextIndex uint64
	results := make([]*out.Output, numWorkers)
	progress := tools.NewProgress(int64(numPhot))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = runWorker(input, kernel, template, ledger, &nextIndex, numPhot, blockSize, photEnergy, workerSeed(w), progress)
		}(w)
	}
	wg.Wait()
	progress.Done()

	data := results[len(results)-1]
	for i := len(results) - 2; i >= 0; i-- {
		data.Merge(results[i])
	}
	io.Pfgreen("sim: simulation complete (%d photons)\n", input.Settings.NumPhot)
	return data
}

// runWorker claims successive blocks from counter until the photon budget
// is exhausted, running every photon in its own block sequentially.
func runWorker(input *Input, kernel Kernel, template *out.Output, ledger *Ledger, counter *uint64, numPhot, blockSize uint64, photEnergy float64, seed int64, progress *tools.Progress) *out.Output {
	rng := rand.New(rand.NewSource(seed))
	worker := template.Clone()

	for {
		start := atomic.AddUint64(counter, blockSize) - blockSize
		if start >= numPhot {
			return worker
		}
		end := start + blockSize
		if end > numPhot {
			end = numPhot
		}

		for i := start; i < end; i++ {
			p := input.Light.Emit(rng, photEnergy)
			if input.Settings.UIDTracked {
				p.UID = ledger.InsertStart(EmissionBeam, p.Ray.Pos(), 0)
			}
			if input.Settings.TimeResolved {
				p = p.WithTime()
			}
			kernel.Run(input, worker, rng, &p)
		}
		progress.Add(int64(end - start))
	}
}

// workerSeed derives a distinct seed per worker index; math/rand is used
// directly as the scheduler's per-worker RNG source rather than gosl/rnd,
// whose exposed surface (rnd.Variables / rnd.GetDistribution) models named
// probability distributions for solver parameters, not raw RNG seeding.
func workerSeed(w int) int64 {
	return time.Now().UnixNano() + int64(w)
}

// RunMultiLight runs the scenario once per light, folding each increment
// into a rolling total. When Settings.OutputIndividualLights is set,
// onIndividual (if non-nil) is invoked with each light's own increment
// before it is merged, so a caller can persist it separately.
func RunMultiLight(input *Input, lights []*mlight.Light, kernel Kernel, template *out.Output, ledger *Ledger, onIndividual func(lightIndex int, increment *out.Output)) *out.Output {
	total := template.Clone()
	for i, light := range lights {
		lightInput := *input
		lightInput.Light = light

		increment := Run(&lightInput, kernel, template, ledger)
		if input.Settings.OutputIndividualLights && onIndividual != nil {
			onIndividual(i, increment)
		}
		total.Merge(increment)
	}
	return total
}
