package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/TigerCipher/cpusched/internal/api"
	"github.com/TigerCipher/cpusched/internal/config"
	"github.com/TigerCipher/cpusched/internal/logging"
	"github.com/TigerCipher/cpusched/internal/report"
	"github.com/TigerCipher/cpusched/internal/workload"
	"github.com/TigerCipher/cpusched/scheduler"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(os.Stderr, "schedsim", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.ServeAddr != "" {
		if err := serve(ctx, logger, cfg.ServeAddr); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(ctx, os.Stdout, logger, cfg); err != nil {
		log.Fatal(err)
	}
}

// run loads the workload named by cfg, schedules it with every selected
// algorithm and writes a report per algorithm to w.
func run(ctx context.Context, w io.Writer, logger *slog.Logger, cfg config.Config) error {
	wl, err := workload.Load(cfg.File)
	if err != nil {
		return err
	}
	if cfg.Quantum > 0 {
		wl.Quantum = cfg.Quantum
	}

	processes, err := wl.Records()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.File, err)
	}
	logger.Debug("loaded workload", "file", cfg.File, "processes", len(processes), "quantum", wl.EffectiveQuantum())

	results, err := scheduler.RunAll(ctx, cfg.Algorithms, processes, wl.EffectiveQuantum())
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("scheduled", "algorithm", r.Algorithm,
			"average_waiting", r.AverageWaiting, "average_turnaround", r.AverageTurnaround)
	}

	report.WriteAll(w, results)
	return nil
}

// serve runs the HTTP API until ctx is cancelled or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, addr string) error {
	app := api.New(logger)

	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(addr)
	}()
	logger.Info("starting server", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			return err
		}
		return <-errc
	}
}
