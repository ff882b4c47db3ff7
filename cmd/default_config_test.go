package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sidewalk-sim/sim"
)

func writeScenarios(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenarioFile_AppliesOnlySetFields(t *testing.T) {
	// GIVEN a scenario that sets width and ticks only
	path := writeScenarios(t, `
version: "1"
scenarios:
  narrow:
    width: 6
    ticks: 300
`)
	f, err := loadScenarioFile(path)
	require.NoError(t, err)
	sc, err := f.Scenario("narrow")
	require.NoError(t, err)

	// WHEN it is applied over the built-in defaults
	cfg := sim.DefaultSidewalkConfig()
	n := defaultTicks
	sc.Apply(&cfg, &n)

	// THEN only the listed fields change
	want := sim.DefaultSidewalkConfig()
	want.Width = 6
	assert.Equal(t, want, cfg)
	assert.Equal(t, int64(300), n)
}

func TestLoadScenarioFile_UnknownKey_Rejected(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  default:
    lenght: 100
`)
	_, err := loadScenarioFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lenght")
}

func TestLoadScenarioFile_Missing_WrapsNotExist(t *testing.T) {
	_, err := loadScenarioFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScenario_UnknownName(t *testing.T) {
	f := &ScenarioFile{Scenarios: map[string]ScenarioConfig{}}
	_, err := f.Scenario("rush-hour")
	assert.EqualError(t, err, `unknown scenario "rush-hour"`)
}

func TestDefaultsYAML_AllScenariosValid(t *testing.T) {
	path := filepath.Join("..", defaultsFilePath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("defaults.yaml not found, skipping integration test")
	}

	// GIVEN the shipped scenarios file
	f, err := loadScenarioFile(path)
	require.NoError(t, err)
	require.Contains(t, f.Scenarios, "default")

	// THEN every scenario produces a valid configuration
	for name, sc := range f.Scenarios {
		cfg := sim.DefaultSidewalkConfig()
		n := defaultTicks
		sc.Apply(&cfg, &n)
		assert.NoError(t, cfg.Validate(), "scenario %s", name)
		assert.GreaterOrEqual(t, n, int64(0), "scenario %s", name)
	}
}
