// Copyright 2026 The MCRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sync"

	"github.com/cpmech/mcrt/geom"
	"github.com/google/uuid"
)

// EmissionKind tags which emitter geometry produced a ledger entry's photon.
type EmissionKind int

const (
	EmissionBeam EmissionKind = iota
	EmissionPoint
	EmissionSurface
	EmissionVolumeMap
	EmissionPhotometricWeb
)

// LedgerEntry is one photon's provenance record: its assigned uid, the kind
// of emitter that produced it, and where and when it started.
type LedgerEntry struct {
	UID       uuid.UUID    `json:"uid"`
	Kind      EmissionKind `json:"kind"`
	StartPos  geom.Point3  `json:"start_pos"`
	StartTime float64      `json:"start_time"`
}

// Ledger is a process-wide, append-only log of photon provenance, shared
// across workers behind a mutex. Acquisition is scoped to a single insert;
// it is never held across a photon's event loop.
type Ledger struct {
	mu      sync.Mutex
	entries []LedgerEntry
}

// NewLedger builds an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// InsertStart appends a start record for a newly emitted photon and returns
// the uid it should carry through its history.
func (l *Ledger) InsertStart(kind EmissionKind, startPos geom.Point3, startTime float64) uuid.UUID {
	id := uuid.New()
	l.mu.Lock()
	l.entries = append(l.entries, LedgerEntry{UID: id, Kind: kind, StartPos: startPos, StartTime: startTime})
	l.mu.Unlock()
	return id
}

// Entries returns a snapshot copy of every record inserted so far, safe to
// serialise to JSON once the simulation has finished.
func (l *Ledger) Entries() []LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
