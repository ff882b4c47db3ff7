package sim

import "math/rand"

// Behavior is the branch of the decision rule an agent took on a tick.
type Behavior string

const (
	// BehaviorAdvance is a step toward the team's target edge.
	BehaviorAdvance Behavior = "advance"
	// BehaviorAvoid is a step away from opposing agents.
	BehaviorAvoid Behavior = "avoid"
	// BehaviorIdle means the agent stands on its target edge and no move is attempted.
	BehaviorIdle Behavior = "idle"
)

// Environment is what an agent sees of the sidewalk while deciding.
type Environment interface {
	Config() SidewalkConfig
	// Nearby returns agents within Manhattan radius of c, excluding c itself,
	// nearest first.
	Nearby(c Coord, radius int) []*Agent
	// AttemptMove relocates a to dest if the move is legal and reports whether it did.
	AttemptMove(a *Agent, dest Coord) bool
}

// Agent is a pedestrian. Pos is authoritative; the grid indexes it.
type Agent struct {
	ID     int
	Team   Team
	Pos    Coord
	Active bool // set once the agent is placed on the grid, never cleared
}

// Decision records the outcome of one agent's tick.
type Decision struct {
	AgentID   int
	Behavior  Behavior
	From      Coord
	To        Coord // attempted destination; equals From when nothing was attempted
	Attempted bool
	Accepted  bool
}

// NewAgent builds an inactive agent with a random team and spawn row.
// Its Pos is the spawn cell on the team's edge.
func NewAgent(id int, rng *rand.Rand, cfg SidewalkConfig) *Agent {
	team := Eastward
	if rng.Intn(2) == 1 {
		team = Westward
	}
	return &Agent{
		ID:   id,
		Team: team,
		Pos:  Coord{X: team.SpawnX(cfg.Length), Y: rng.Intn(cfg.Width)},
	}
}

// Step runs the agent's decision rule once against env.
//
// With at least one opposing agent in the concern radius and fewer than
// SafeThreshold teammates there, the agent steps away from the opposition;
// otherwise it advances toward its target edge.
func (a *Agent) Step(env Environment) Decision {
	cfg := env.Config()
	var opposing []*Agent
	teammates := 0
	for _, n := range env.Nearby(a.Pos, cfg.ConcernDistance) {
		if n.Team != a.Team {
			opposing = append(opposing, n)
		} else {
			teammates++
		}
	}
	if len(opposing) >= 1 && teammates < cfg.SafeThreshold {
		return a.avoid(env, opposing)
	}
	return a.advance(env)
}

// avoid walks the opposing set nearest first. Each opposing agent overwrites
// the chosen step, so the farthest one decides the move.
// TODO: let the nearest opposing agent dominate once the intended rule is confirmed.
func (a *Agent) avoid(env Environment, opposing []*Agent) Decision {
	var step Coord
	for _, o := range opposing {
		step = awayFrom(a.Pos, o.Pos)
	}
	return a.move(env, BehaviorAvoid, step)
}

func (a *Agent) advance(env Environment) Decision {
	length := env.Config().Length
	if a.Pos.X == a.Team.TargetX(length) {
		return Decision{AgentID: a.ID, Behavior: BehaviorIdle, From: a.Pos, To: a.Pos}
	}
	return a.move(env, BehaviorAdvance, Coord{X: a.Team.Direction()})
}

// move clamps the destination to the sidewalk and asks env to apply it.
// A rejected move leaves the agent where it is for this tick.
func (a *Agent) move(env Environment, b Behavior, step Coord) Decision {
	cfg := env.Config()
	from := a.Pos
	dest := from.Add(step).Clamp(cfg.Length, cfg.Width)
	return Decision{
		AgentID:   a.ID,
		Behavior:  b,
		From:      from,
		To:        dest,
		Attempted: true,
		Accepted:  env.AttemptMove(a, dest),
	}
}

// awayFrom picks the unit step that increases separation from other,
// preferring the x axis.
func awayFrom(self, other Coord) Coord {
	dx := other.X - self.X
	dy := other.Y - self.Y
	switch {
	case dx > 0:
		return Coord{X: -1}
	case dx < 0:
		return Coord{X: 1}
	case dy > 0:
		return Coord{Y: -1}
	case dy < 0:
		return Coord{Y: 1}
	}
	return Coord{}
}
