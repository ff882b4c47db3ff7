package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sidewalk-sim/sim"
	"github.com/inference-sim/sidewalk-sim/sim/trace"
)

var (
	// Shared CLI flags
	seed            int64  // Seed for agent team and spawn-row draws
	ticks           int64  // Number of ticks to simulate
	logLevel        string // Log verbosity level
	configPath      string // Scenarios YAML file
	scenarioName    string // Scenario to load from configPath
	length          int    // Sidewalk length (x-dimension)
	width           int    // Sidewalk width (y-dimension)
	interarrival    int    // Ticks between spawn attempts
	concernDistance int    // Neighbor radius for avoidance decisions
	safeThreshold   int    // Teammate count that overrides avoidance
	initialAgents   int    // Agents placed before the first tick

	// run-only flags
	traceLevel string // Decision trace level
	printFrame bool   // Print the final frame after the metrics

	// watch/serve flags
	watchFrameMs int    // Milliseconds between animated ticks
	serveFrameMs int    // Milliseconds between broadcast ticks
	addr         string // Listen address for serve
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sidewalk-sim",
	Short: "Tick-driven simulator of bidirectional pedestrian flow on a sidewalk",
}

// runCmd executes a headless simulation and prints summary metrics
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sidewalk simulation headless and print metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg, n := resolveConfig(cmd)
		s := newSidewalk(cfg)
		if traceLevel == string(trace.TraceLevelDecisions) {
			s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
		}

		s.Run(n, nil)
		s.Metrics.Print(os.Stdout)
		if s.Trace.Enabled() {
			printTraceSummary(os.Stdout, trace.Summarize(s.Trace))
		}
		if printFrame {
			printFinalFrame(os.Stdout, s)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig layers built-in defaults, the selected YAML scenario and any
// explicitly set flags, in that order, and validates the result.
func resolveConfig(cmd *cobra.Command) (sim.SidewalkConfig, int64) {
	cfg := sim.DefaultSidewalkConfig()
	n := defaultTicks

	flags := cmd.Flags()
	f, err := loadScenarioFile(configPath)
	switch {
	case err == nil:
		sc, err := f.Scenario(scenarioName)
		if err != nil {
			logrus.Fatalf("%v in %s", err, configPath)
		}
		sc.Apply(&cfg, &n)
		logrus.Debugf("Loaded scenario %q from %s", scenarioName, configPath)
	case errors.Is(err, fs.ErrNotExist) && !flags.Changed("config") && !flags.Changed("scenario"):
		logrus.Debugf("No %s found, using built-in defaults", configPath)
	default:
		logrus.Fatalf("Failed to load scenarios: %v", err)
	}

	// Explicit flags win over the scenario
	overrides := []struct {
		name string
		dst  *int
		val  int
	}{
		{"length", &cfg.Length, length},
		{"width", &cfg.Width, width},
		{"interarrival", &cfg.Interarrival, interarrival},
		{"concern-distance", &cfg.ConcernDistance, concernDistance},
		{"safe-threshold", &cfg.SafeThreshold, safeThreshold},
		{"initial-agents", &cfg.InitialAgents, initialAgents},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.val
		}
	}
	if flags.Changed("ticks") {
		n = ticks
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid sidewalk configuration: %v", err)
	}
	if n < 0 {
		logrus.Fatalf("ticks must be non-negative, got %d", n)
	}
	logrus.Infof("Sidewalk %dx%d, interarrival=%d, concern-distance=%d, safe-threshold=%d, initial-agents=%d, ticks=%d, seed=%d",
		cfg.Length, cfg.Width, cfg.Interarrival, cfg.ConcernDistance, cfg.SafeThreshold, cfg.InitialAgents, n, seed)
	return cfg, n
}

// newSidewalk builds a seeded sidewalk and places the initial population.
func newSidewalk(cfg sim.SidewalkConfig) *sim.Sidewalk {
	s := sim.NewSidewalk(cfg, sim.NewPartitionedRNG(sim.NewSimulationKey(seed)))
	placed := s.Populate(cfg.InitialAgents)
	logrus.Infof("Placed %d of %d initial agents", placed, cfg.InitialAgents)
	return s
}

// init sets up CLI flags and subcommands
func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&seed, "seed", 42, "Seed for agent team and spawn-row draws")
	pf.Int64Var(&ticks, "ticks", defaultTicks, "Number of ticks to simulate")
	pf.StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&configPath, "config", defaultsFilePath, "Scenarios YAML file")
	pf.StringVar(&scenarioName, "scenario", "default", "Scenario name within the scenarios file")

	defaults := sim.DefaultSidewalkConfig()
	pf.IntVar(&length, "length", defaults.Length, "Sidewalk length (cells along the walking direction)")
	pf.IntVar(&width, "width", defaults.Width, "Sidewalk width (cells across)")
	pf.IntVar(&interarrival, "interarrival", defaults.Interarrival, "Ticks between spawn attempts")
	pf.IntVar(&concernDistance, "concern-distance", defaults.ConcernDistance, "Manhattan radius within which neighbors affect movement")
	pf.IntVar(&safeThreshold, "safe-threshold", defaults.SafeThreshold, "Nearby teammates needed to keep advancing despite opposition")
	pf.IntVar(&initialAgents, "initial-agents", defaults.InitialAgents, "Agents placed before the first tick")

	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&printFrame, "print-frame", false, "Print the final sidewalk frame")

	rootCmd.AddCommand(runCmd, watchCmd, serveCmd)
}
