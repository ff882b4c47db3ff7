package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// noSpawn is an interarrival large enough that no spawn fires in unit tests,
// so every agent on the grid is one the test placed by hand.
const noSpawn = 1_000_000

// newTestSidewalk creates a sidewalk with the reference neighbor constants
// (concern distance 4, safe threshold 5) and spawning disabled.
func newTestSidewalk(length, width int) *Sidewalk {
	cfg := SidewalkConfig{
		Length:          length,
		Width:           width,
		Interarrival:    noSpawn,
		ConcernDistance: 4,
		SafeThreshold:   5,
	}
	return NewSidewalk(cfg, NewPartitionedRNG(NewSimulationKey(42)))
}

// place puts a hand-built agent on the sidewalk and fails the test if the cell is taken.
func place(t *testing.T, s *Sidewalk, id int, team Team, x, y int) *Agent {
	t.Helper()
	a := &Agent{ID: id, Team: team, Pos: Coord{X: x, Y: y}}
	require.True(t, s.Enter(a), "placing agent %d at (%d,%d)", id, x, y)
	return a
}

// assertInvariants checks that every agent is inside the sidewalk, no two
// agents share a cell, and the grid indexes each agent under its own Pos.
func assertInvariants(t *testing.T, s *Sidewalk) {
	t.Helper()
	seen := make(map[Coord]int)
	for _, a := range s.Grid().Snapshot() {
		require.True(t, s.Config().Contains(a.Pos), "agent %d out of bounds at %+v", a.ID, a.Pos)
		if other, dup := seen[a.Pos]; dup {
			t.Fatalf("agents %d and %d share cell %+v", other, a.ID, a.Pos)
		}
		seen[a.Pos] = a.ID
		require.Same(t, a, s.Grid().At(a.Pos), "grid does not index agent %d at its Pos", a.ID)
		require.True(t, a.Active, "agent %d on grid but inactive", a.ID)
	}
}
