package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every spawn attempt and movement decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a run.
type SimulationTrace struct {
	Config TraceConfig
	Spawns []SpawnRecord
	Moves  []MoveRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Spawns: make([]SpawnRecord, 0),
		Moves:  make([]MoveRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// RecordSpawn appends a spawn attempt record.
func (st *SimulationTrace) RecordSpawn(record SpawnRecord) {
	st.Spawns = append(st.Spawns, record)
}

// RecordMove appends a movement decision record.
func (st *SimulationTrace) RecordMove(record MoveRecord) {
	st.Moves = append(st.Moves, record)
}
