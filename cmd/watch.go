package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sidewalk-sim/sim/render"
)

// watchCmd animates the simulation in the terminal
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Animate the sidewalk in the terminal",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if watchFrameMs <= 0 {
			logrus.Fatalf("--frame-ms must be > 0, got %d", watchFrameMs)
		}
		cfg, n := resolveConfig(cmd)
		s := newSidewalk(cfg)

		screen, err := tcell.NewScreen()
		if err != nil {
			logrus.Fatalf("Failed to create screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			logrus.Fatalf("Failed to initialize screen: %v", err)
		}

		// Log lines would corrupt the drawn frame.
		out := logrus.StandardLogger().Out
		logrus.SetOutput(io.Discard)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = render.NewViewer(screen).Run(ctx, s, n, time.Duration(watchFrameMs)*time.Millisecond)
		stop()
		screen.Fini()
		logrus.SetOutput(out)

		if err != nil && ctx.Err() == nil {
			logrus.Fatalf("Viewer failed: %v", err)
		}
		s.Metrics.Print(os.Stdout)
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchFrameMs, "frame-ms", 10, "Milliseconds between animated ticks")
}
