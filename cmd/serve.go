package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sidewalk-sim/sim/render"
)

const shutdownTimeout = 5 * time.Second

// serveCmd streams per-tick snapshots to WebSocket clients
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation and stream snapshots over WebSocket at /ws",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if serveFrameMs < 0 {
			logrus.Fatalf("--frame-ms must be >= 0, got %d", serveFrameMs)
		}
		cfg, n := resolveConfig(cmd)
		s := newSidewalk(cfg)

		hub := render.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: addr, Handler: mux}

		go func() {
			logrus.Infof("Serving snapshots on ws://%s/ws", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Fatalf("HTTP server failed: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		s.Run(n, hub.Observer(ctx, cfg, time.Duration(serveFrameMs)*time.Millisecond))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Warnf("HTTP server shutdown: %v", err)
		}
		s.Metrics.Print(os.Stdout)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Listen address")
	serveCmd.Flags().IntVar(&serveFrameMs, "frame-ms", 50, "Milliseconds between broadcast ticks")
}
