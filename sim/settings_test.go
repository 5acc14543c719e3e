// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewSettingsRejectsZeroBlockSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero block size")
		}
	}()
	NewSettings(100, 0, 0.001, 1000, 0.01, 5)
}

func TestRouletteSurviveProbIsInverseOfBarrels(t *testing.T) {
	s := NewSettings(100, 10, 0.001, 1000, 0.01, 5)
	chk.Float64(t, "prob", 1e-12, s.RouletteSurviveProb(), 0.2)
}

func TestResolvedThreadCountCapsAtAvailableCPUs(t *testing.T) {
	s := NewSettings(100, 10, 0.001, 1000, 0.01, 5)
	if got := s.ResolvedThreadCount(4); got != 4 {
		t.Fatalf("expected unset num_threads to use all available CPUs, got %v", got)
	}
	n := 2
	s.NumThreads = &n
	if got := s.ResolvedThreadCount(8); got != 2 {
		t.Fatalf("expected explicit num_threads to be honoured, got %v", got)
	}
	if got := s.ResolvedThreadCount(1); got != 1 {
		t.Fatalf("expected explicit num_threads to still be capped by available CPUs, got %v", got)
	}
}
