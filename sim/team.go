package sim

// Team fixes an agent's spawn edge and travel direction.
type Team int

const (
	// Eastward agents enter at x=0 and walk toward x=Length-1.
	Eastward Team = iota
	// Westward agents enter at x=Length-1 and walk toward x=0.
	Westward
)

func (t Team) String() string {
	switch t {
	case Eastward:
		return "eastward"
	case Westward:
		return "westward"
	default:
		return "unknown"
	}
}

// Direction is the sign of the team's travel along x.
func (t Team) Direction() int {
	if t == Eastward {
		return 1
	}
	return -1
}

// SpawnX returns the edge column the team enters from.
func (t Team) SpawnX(length int) int {
	if t == Eastward {
		return 0
	}
	return length - 1
}

// TargetX returns the edge column the team walks toward.
func (t Team) TargetX(length int) int {
	if t == Eastward {
		return length - 1
	}
	return 0
}
