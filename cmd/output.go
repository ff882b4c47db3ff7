package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/inference-sim/sidewalk-sim/sim"
	"github.com/inference-sim/sidewalk-sim/sim/render"
	"github.com/inference-sim/sidewalk-sim/sim/trace"
)

// printTraceSummary writes the decision trace summary in the same aligned
// format as the metrics block.
func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "=== Trace Summary ===")
	_, _ = fmt.Fprintf(w, "Spawns Placed        : %d / %d\n", ts.SpawnsPlaced, ts.SpawnAttempts)
	_, _ = fmt.Fprintf(w, "Total Decisions      : %d\n", ts.TotalDecisions)
	_, _ = fmt.Fprintf(w, "Agents With Moves    : %d\n", ts.AgentsWithMoves)
	_, _ = fmt.Fprintf(w, "Acceptance Rate      : %.2f%% (%d accepted, %d rejected)\n",
		100*ts.AcceptanceRate, ts.Accepted, ts.Rejected)

	behaviors := make([]string, 0, len(ts.BehaviorCounts))
	for b := range ts.BehaviorCounts {
		behaviors = append(behaviors, b)
	}
	slices.Sort(behaviors)
	for _, b := range behaviors {
		_, _ = fmt.Fprintf(w, "  %-19s: %d\n", b, ts.BehaviorCounts[b])
	}
}

func printFinalFrame(w io.Writer, s *sim.Sidewalk) {
	cfg := s.Config()
	f := render.NewFrame(s.Clock, cfg.Length, cfg.Width, s.Snapshot())
	_, _ = fmt.Fprintf(w, "=== Frame (tick %d) ===\n", s.Clock)
	_, _ = fmt.Fprint(w, f.String())
}
