package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordDecision(t *testing.T) {
	m := NewMetrics()
	m.recordDecision(Decision{Behavior: BehaviorAdvance, Attempted: true, Accepted: true})
	m.recordDecision(Decision{Behavior: BehaviorAvoid, Attempted: true, Accepted: false})
	m.recordDecision(Decision{Behavior: BehaviorIdle})

	assert.Equal(t, 1, m.AdvanceDecisions)
	assert.Equal(t, 1, m.AvoidDecisions)
	assert.Equal(t, 1, m.IdleDecisions)
	assert.Equal(t, 1, m.MovesAccepted)
	assert.Equal(t, 1, m.MovesRejected)
}

func TestMetrics_Print(t *testing.T) {
	m := &Metrics{Ticks: 12, SpawnAttempts: 4, Spawned: 3, SpawnCollisions: 1, MovesAccepted: 3, MovesRejected: 1, Arrived: 2}
	var buf bytes.Buffer

	m.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "=== Sidewalk Metrics ===")
	assert.Contains(t, out, "Spawned Agents       : 3 / 4 attempts (1 collisions)")
	assert.Contains(t, out, "Moves Accepted       : 3 (75.00%)")
	assert.Contains(t, out, "Arrived Agents       : 2")
}

func TestMetrics_Print_NoMoves_OmitsRates(t *testing.T) {
	var buf bytes.Buffer
	NewMetrics().Print(&buf)
	assert.NotContains(t, buf.String(), "Moves Accepted")
}
