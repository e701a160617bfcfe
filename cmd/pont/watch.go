package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Saber-Kurama/learn-pont/internal/metrics"
	"github.com/Saber-Kurama/learn-pont/manager"
)

var cmdWatch = &cli.Command{
	Name:  "watch",
	Usage: "regenerate every pollingTime seconds until interrupted",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "metrics-addr",
			Usage:   "serve Prometheus metrics on this address (e.g. :9090)",
			EnvVars: []string{"PONT_METRICS_ADDR"},
		},
		&cli.DurationFlag{
			Name:  "interval",
			Usage: "override the configured polling interval",
		},
	}, historyFlags...),
	Action: func(cctx *cli.Context) error {
		ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		var opts []manager.Option
		if d := cctx.Duration("interval"); d > 0 {
			opts = append(opts, manager.WithPollingInterval(d))
		}
		m, err := loadManager(cctx, opts...)
		if err != nil {
			return err
		}

		if addr := cctx.String("metrics-addr"); addr != "" {
			srv := &http.Server{
				Addr:              addr,
				Handler:           metricsMux(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					newLogger(cctx).Error("metrics server failed", "addr", addr, "error", err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
		}
		return m.Watch(ctx)
	},
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}
