// File: control/metrics.go
// License: Apache-2.0
//
// Outcome counters for elastic pop diagnostics.
// Thread-safe so a monitoring goroutine can snapshot while the loop runs.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-ds/api"
)

// PopStats accumulates elastic pop outcomes so call sites can log or export
// how often a loop ran dry, stretched, or shed backlog.
type PopStats struct {
	mu       sync.RWMutex
	counts   map[api.PopOutcome]uint64
	sampled  uint64
	requests uint64
	updated  time.Time
}

// NewPopStats creates an empty outcome registry.
func NewPopStats() *PopStats {
	return &PopStats{
		counts: make(map[api.PopOutcome]uint64),
	}
}

// Record adds one pop result to the registry.
func (ps *PopStats) Record(r api.PopResult) {
	ps.mu.Lock()
	ps.counts[r.Outcome]++
	ps.sampled += uint64(r.Sampled)
	ps.requests++
	ps.updated = time.Now()
	ps.mu.Unlock()
}

// Count returns how many pops finished with the given outcome.
func (ps *PopStats) Count(o api.PopOutcome) uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.counts[o]
}

// Requests returns the total number of recorded pops.
func (ps *PopStats) Requests() uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.requests
}

// Sampled returns the total number of real elements consumed on
// resampling paths.
func (ps *PopStats) Sampled() uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.sampled
}

// GetSnapshot returns the latest counters keyed by outcome name.
func (ps *PopStats) GetSnapshot() map[string]uint64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make(map[string]uint64, len(ps.counts))
	for o, n := range ps.counts {
		out[o.String()] = n
	}
	return out
}

// Updated returns the time of the most recent Record call.
func (ps *PopStats) Updated() time.Time {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.updated
}
