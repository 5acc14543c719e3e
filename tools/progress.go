// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"sync/atomic"

	"github.com/cpmech/gosl/io"
)

// Progress reports a scheduler's photon-count progress to the terminal at a
// coarse granularity (once per completed block, not per photon).
type Progress struct {
	total     int64
	completed int64
	lastPct   int64
}

// NewProgress builds a tracker for a run of total photons.
func NewProgress(total int64) *Progress {
	return &Progress{total: total, lastPct: -1}
}

// Add records n more completed photons and prints a line whenever the
// rounded percentage advances.
func (p *Progress) Add(n int64) {
	done := atomic.AddInt64(&p.completed, n)
	if p.total <= 0 {
		return
	}
	pct := done * 100 / p.total
	if pct != atomic.LoadInt64(&p.lastPct) {
		atomic.StoreInt64(&p.lastPct, pct)
		io.Pf(">> %3d%% (%d / %d photons)\n", pct, done, p.total)
	}
}

// Done reports final completion in green, or a warning in red if fewer
// photons completed than requested (e.g. a worker panicked).
func (p *Progress) Done() {
	done := atomic.LoadInt64(&p.completed)
	if done >= p.total {
		io.Pfgreen(">> simulation complete: %d photons\n", done)
		return
	}
	io.Pfred(">> simulation ended early: %d / %d photons\n", done, p.total)
}
