package sim

import "fmt"

// SidewalkConfig groups the simulation-wide constants. Values are fixed when
// the Sidewalk is built and never change during a run.
type SidewalkConfig struct {
	Length          int // x-dimension, agents travel along it (must be > 0)
	Width           int // y-dimension (must be > 0)
	Interarrival    int // a spawn is attempted on every tick divisible by this (must be > 0)
	ConcernDistance int // Manhattan radius of the neighbor query (must be >= 0)
	SafeThreshold   int // teammates needed nearby to ignore opposition (must be >= 0)
	InitialAgents   int // agents placed before the first tick (must be >= 0)
}

// DefaultSidewalkConfig returns the reference sidewalk: 200 cells long, 25 wide,
// a spawn attempt every 3 ticks and 40 agents placed up front.
func DefaultSidewalkConfig() SidewalkConfig {
	return SidewalkConfig{
		Length:          200,
		Width:           25,
		Interarrival:    3,
		ConcernDistance: 4,
		SafeThreshold:   5,
		InitialAgents:   40,
	}
}

// Validate checks that every field is in range.
func (c SidewalkConfig) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("length must be > 0, got %d", c.Length)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be > 0, got %d", c.Width)
	}
	if c.Interarrival <= 0 {
		return fmt.Errorf("interarrival must be > 0, got %d", c.Interarrival)
	}
	if c.ConcernDistance < 0 {
		return fmt.Errorf("concern distance must be non-negative, got %d", c.ConcernDistance)
	}
	if c.SafeThreshold < 0 {
		return fmt.Errorf("safe threshold must be non-negative, got %d", c.SafeThreshold)
	}
	if c.InitialAgents < 0 {
		return fmt.Errorf("initial agents must be non-negative, got %d", c.InitialAgents)
	}
	return nil
}

// Contains reports whether c lies on the sidewalk.
func (c SidewalkConfig) Contains(p Coord) bool {
	return p.X >= 0 && p.X < c.Length && p.Y >= 0 && p.Y < c.Width
}
