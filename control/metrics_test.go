// File: control/metrics_test.go
// License: Apache-2.0

package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-ds/api"
	"github.com/momentics/hioload-ds/control"
)

func TestPopStatsRecord(t *testing.T) {
	ps := control.NewPopStats()
	assert.Equal(t, uint64(0), ps.Requests())
	assert.True(t, ps.Updated().IsZero())

	ps.Record(api.PopResult{Outcome: api.PopExact})
	ps.Record(api.PopResult{Outcome: api.PopExact})
	ps.Record(api.PopResult{Outcome: api.PopUpsampled, Sampled: 2})
	ps.Record(api.PopResult{Outcome: api.PopDownsampled, Sampled: 8})
	ps.Record(api.PopResult{Outcome: api.PopEmpty})

	assert.Equal(t, uint64(5), ps.Requests())
	assert.Equal(t, uint64(2), ps.Count(api.PopExact))
	assert.Equal(t, uint64(1), ps.Count(api.PopUpsampled))
	assert.Equal(t, uint64(1), ps.Count(api.PopDownsampled))
	assert.Equal(t, uint64(1), ps.Count(api.PopEmpty))
	assert.Equal(t, uint64(10), ps.Sampled())
	assert.False(t, ps.Updated().IsZero())
}

func TestPopStatsSnapshot(t *testing.T) {
	ps := control.NewPopStats()
	ps.Record(api.PopResult{Outcome: api.PopUpsampled, Sampled: 3})
	ps.Record(api.PopResult{Outcome: api.PopExact})

	snap := ps.GetSnapshot()
	assert.Equal(t, uint64(1), snap["upsampled"])
	assert.Equal(t, uint64(1), snap["exact"])

	// Snapshot is a copy; mutating it must not touch the registry.
	snap["exact"] = 99
	assert.Equal(t, uint64(1), ps.Count(api.PopExact))
}
