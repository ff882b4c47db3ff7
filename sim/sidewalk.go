// sim/sidewalk.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sidewalk-sim/sim/trace"
)

// progressInterval is how often (in ticks) Run logs a progress line.
const progressInterval = 100

// AgentView is the read-only per-agent state handed to renderers each tick.
type AgentView struct {
	ID   int
	X, Y int
	Team Team
}

// TickObserver is called after every tick of Run with the agents' positions.
// Returning false stops the run.
type TickObserver func(tick int64, agents []AgentView) bool

// Sidewalk is the environment: it owns the agents and the occupancy grid and
// drives the tick loop. A tick is strictly sequential: each agent sees the
// grid as left by the agents processed before it.
type Sidewalk struct {
	Clock   int64
	Metrics *Metrics
	// Trace collects per-decision records when non-nil and enabled.
	Trace *trace.SimulationTrace

	cfg    SidewalkConfig
	grid   *OccupancyGrid
	rng    *PartitionedRNG
	nextID int
}

// NewSidewalk creates an empty sidewalk. Panics on an invalid config or nil rng.
func NewSidewalk(cfg SidewalkConfig, rng *PartitionedRNG) *Sidewalk {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewSidewalk: %v", err))
	}
	if rng == nil {
		panic("NewSidewalk: rng must not be nil")
	}
	return &Sidewalk{
		Metrics: NewMetrics(),
		cfg:     cfg,
		grid:    NewOccupancyGrid(),
		rng:     rng,
	}
}

// Config returns the sidewalk's constants.
func (s *Sidewalk) Config() SidewalkConfig {
	return s.cfg
}

// Grid exposes the occupancy grid for inspection.
func (s *Sidewalk) Grid() *OccupancyGrid {
	return s.grid
}

// Populate creates n agents from the population RNG and tries to place each
// on its spawn cell. Returns how many were placed.
func (s *Sidewalk) Populate(n int) int {
	rng := s.rng.ForSubsystem(SubsystemPopulation)
	placed := 0
	for i := 0; i < n; i++ {
		if s.spawn(rng) {
			placed++
		}
	}
	logrus.Debugf("[tick %07d] initial population: %d/%d placed", s.Clock, placed, n)
	return placed
}

// Enter places an inactive agent on the grid at its Pos and activates it.
// Returns false if the cell is occupied or off the sidewalk.
func (s *Sidewalk) Enter(a *Agent) bool {
	if a.Active || !s.cfg.Contains(a.Pos) {
		return false
	}
	if !s.grid.Insert(a.Pos, a) {
		return false
	}
	a.Active = true
	return true
}

// AttemptMove validates and applies a single-step move. The move is rejected
// if dest is more than one Manhattan step away, off the sidewalk, or occupied.
// A rejected move changes nothing.
func (s *Sidewalk) AttemptMove(a *Agent, dest Coord) bool {
	if a.Pos.Distance(dest) > 1 || !s.cfg.Contains(dest) {
		return false
	}
	if s.grid.IsOccupied(dest) {
		return false
	}
	s.grid.Relocate(a, dest)
	return true
}

// Nearby returns the agents within Manhattan distance radius of c, excluding
// whoever stands on c. Results are ordered by distance; ties by x, then y.
func (s *Sidewalk) Nearby(c Coord, radius int) []*Agent {
	var found []*Agent
	for d := 1; d <= radius; d++ {
		for dx := -d; dx <= d; dx++ {
			rem := d - abs(dx)
			if a := s.grid.At(Coord{X: c.X + dx, Y: c.Y - rem}); a != nil {
				found = append(found, a)
			}
			if rem == 0 {
				continue
			}
			if a := s.grid.At(Coord{X: c.X + dx, Y: c.Y + rem}); a != nil {
				found = append(found, a)
			}
		}
	}
	return found
}

// Step executes one tick: a spawn attempt when tick is a multiple of
// Interarrival, then one decision per active agent in grid snapshot order.
func (s *Sidewalk) Step(tick int64) {
	s.Clock = tick
	if tick%int64(s.cfg.Interarrival) == 0 {
		s.spawn(s.rng.ForSubsystem(SubsystemSpawn))
	}

	for _, a := range s.grid.Snapshot() {
		if !a.Active {
			continue
		}
		d := a.Step(s)
		s.Metrics.recordDecision(d)
		if s.Trace.Enabled() {
			s.Trace.RecordMove(trace.MoveRecord{
				Tick:     tick,
				AgentID:  d.AgentID,
				Behavior: string(d.Behavior),
				FromX:    d.From.X,
				FromY:    d.From.Y,
				ToX:      d.To.X,
				ToY:      d.To.Y,
				Accepted: d.Accepted,
			})
		}
	}

	s.Metrics.Ticks++
	s.Metrics.Arrived = s.countArrived()
}

// Run executes ticks Clock+1 .. Clock+ticks, calling observe (if non-nil)
// after each one.
func (s *Sidewalk) Run(ticks int64, observe TickObserver) {
	end := s.Clock + ticks
	for s.Clock < end {
		s.Step(s.Clock + 1)
		if s.Clock%progressInterval == 0 {
			logrus.Infof("[tick %07d] %d active agents", s.Clock, s.grid.Len())
		}
		if observe != nil && !observe(s.Clock, s.Snapshot()) {
			logrus.Debugf("[tick %07d] observer stopped the run", s.Clock)
			break
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", s.Clock)
}

// Snapshot returns the position and team of every active agent.
func (s *Sidewalk) Snapshot() []AgentView {
	agents := s.grid.Snapshot()
	views := make([]AgentView, 0, len(agents))
	for _, a := range agents {
		views = append(views, AgentView{ID: a.ID, X: a.Pos.X, Y: a.Pos.Y, Team: a.Team})
	}
	return views
}

// spawn builds the next agent and tries to place it. A taken spawn cell
// drops the agent; its ID is still consumed.
func (s *Sidewalk) spawn(rng *rand.Rand) bool {
	a := NewAgent(s.nextID, rng, s.cfg)
	s.nextID++
	placed := s.Enter(a)

	s.Metrics.SpawnAttempts++
	if placed {
		s.Metrics.Spawned++
		logrus.Debugf("[tick %07d] spawned agent %d (%s) at (%d,%d)", s.Clock, a.ID, a.Team, a.Pos.X, a.Pos.Y)
	} else {
		s.Metrics.SpawnCollisions++
		logrus.Debugf("[tick %07d] spawn cell (%d,%d) taken, agent %d dropped", s.Clock, a.Pos.X, a.Pos.Y, a.ID)
	}
	if s.Trace.Enabled() {
		s.Trace.RecordSpawn(trace.SpawnRecord{
			Tick:    s.Clock,
			AgentID: a.ID,
			Team:    a.Team.String(),
			X:       a.Pos.X,
			Y:       a.Pos.Y,
			Placed:  placed,
		})
	}
	return placed
}

func (s *Sidewalk) countArrived() int {
	n := 0
	for _, a := range s.grid.cells {
		if a.Pos.X == a.Team.TargetX(s.cfg.Length) {
			n++
		}
	}
	return n
}
