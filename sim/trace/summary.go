package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	SpawnAttempts   int
	SpawnsPlaced    int
	TotalDecisions  int
	Accepted        int
	Rejected        int
	AcceptanceRate  float64        // accepted / attempted moves; 0 when nothing was attempted
	BehaviorCounts  map[string]int // behavior → number of decisions
	AgentsWithMoves int            // distinct agents that took at least one decision
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		BehaviorCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.SpawnAttempts = len(st.Spawns)
	for _, s := range st.Spawns {
		if s.Placed {
			summary.SpawnsPlaced++
		}
	}

	summary.TotalDecisions = len(st.Moves)
	agents := make(map[int]struct{})
	for _, m := range st.Moves {
		summary.BehaviorCounts[m.Behavior]++
		agents[m.AgentID] = struct{}{}
		if m.Behavior == "idle" {
			continue
		}
		if m.Accepted {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
	}
	if attempted := summary.Accepted + summary.Rejected; attempted > 0 {
		summary.AcceptanceRate = float64(summary.Accepted) / float64(attempted)
	}
	summary.AgentsWithMoves = len(agents)

	return summary
}
