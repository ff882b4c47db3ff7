// Tracks run-wide movement and arrival counters for the end-of-run summary.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about a sidewalk run
// for final reporting.
type Metrics struct {
	Ticks           int64 // Number of ticks executed
	SpawnAttempts   int   // Spawn attempts, one per INTERARRIVAL ticks plus the initial population
	Spawned         int   // Agents successfully placed
	SpawnCollisions int   // Spawn attempts dropped because the edge cell was taken

	AdvanceDecisions int // Ticks on which an agent chose to advance
	AvoidDecisions   int // Ticks on which an agent chose to avoid
	IdleDecisions    int // Ticks on which an agent stood on its target edge

	MovesAccepted int // Attempted moves applied to the grid
	MovesRejected int // Attempted moves refused (occupied destination or illegal step)

	Arrived int // Active agents currently standing on their target edge
}

// NewMetrics returns zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordDecision(d Decision) {
	switch d.Behavior {
	case BehaviorAdvance:
		m.AdvanceDecisions++
	case BehaviorAvoid:
		m.AvoidDecisions++
	case BehaviorIdle:
		m.IdleDecisions++
	}
	if !d.Attempted {
		return
	}
	if d.Accepted {
		m.MovesAccepted++
	} else {
		m.MovesRejected++
	}
}

// Print writes the end-of-run summary to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Sidewalk Metrics ===")
	fmt.Fprintf(w, "Ticks                : %d\n", m.Ticks)
	fmt.Fprintf(w, "Spawned Agents       : %d / %d attempts (%d collisions)\n", m.Spawned, m.SpawnAttempts, m.SpawnCollisions)
	fmt.Fprintf(w, "Decisions            : advance=%d avoid=%d idle=%d\n", m.AdvanceDecisions, m.AvoidDecisions, m.IdleDecisions)
	if attempted := m.MovesAccepted + m.MovesRejected; attempted > 0 {
		fmt.Fprintf(w, "Moves Accepted       : %d (%.2f%%)\n", m.MovesAccepted, 100*float64(m.MovesAccepted)/float64(attempted))
		fmt.Fprintf(w, "Moves Rejected       : %d\n", m.MovesRejected)
	}
	fmt.Fprintf(w, "Arrived Agents       : %d\n", m.Arrived)
}
