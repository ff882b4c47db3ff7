package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sidewalk-sim/sim"
)

// defaultsFilePath is where scenarios are looked up when --config is not given.
const defaultsFilePath = "defaults.yaml"

// defaultTicks matches the reference animation length.
const defaultTicks int64 = 2000

// ScenarioConfig is one named entry of defaults.yaml.
// Nil fields mean "not set" and leave the built-in default in place.
type ScenarioConfig struct {
	Length          *int   `yaml:"length"`
	Width           *int   `yaml:"width"`
	Interarrival    *int   `yaml:"interarrival"`
	ConcernDistance *int   `yaml:"concern_distance"`
	SafeThreshold   *int   `yaml:"safe_threshold"`
	InitialAgents   *int   `yaml:"initial_agents"`
	Ticks           *int64 `yaml:"ticks"`
}

// ScenarioFile represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string                    `yaml:"version"`
	Scenarios map[string]ScenarioConfig `yaml:"scenarios"`
}

// loadScenarioFile parses a scenarios file with strict field checking, so a
// misspelled key is an error rather than a silently ignored setting.
func loadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios file: %w", err)
	}
	var f ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenarios file %s: %w", path, err)
	}
	return &f, nil
}

// Scenario returns the named scenario.
func (f *ScenarioFile) Scenario(name string) (ScenarioConfig, error) {
	sc, ok := f.Scenarios[name]
	if !ok {
		return ScenarioConfig{}, fmt.Errorf("unknown scenario %q", name)
	}
	return sc, nil
}

// Apply overwrites every field the scenario sets.
func (sc ScenarioConfig) Apply(cfg *sim.SidewalkConfig, ticks *int64) {
	setInt(&cfg.Length, sc.Length)
	setInt(&cfg.Width, sc.Width)
	setInt(&cfg.Interarrival, sc.Interarrival)
	setInt(&cfg.ConcernDistance, sc.ConcernDistance)
	setInt(&cfg.SafeThreshold, sc.SafeThreshold)
	setInt(&cfg.InitialAgents, sc.InitialAgents)
	if sc.Ticks != nil {
		*ticks = *sc.Ticks
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
