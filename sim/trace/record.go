// Package trace provides per-tick decision recording for sidewalk runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// SpawnRecord captures a single spawn attempt.
type SpawnRecord struct {
	Tick    int64
	AgentID int
	Team    string
	X, Y    int
	Placed  bool // false when the spawn cell was occupied
}

// MoveRecord captures one agent's decision on one tick.
type MoveRecord struct {
	Tick     int64
	AgentID  int
	Behavior string // "advance", "avoid" or "idle"
	FromX    int
	FromY    int
	ToX      int
	ToY      int
	Accepted bool
}
