package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/affectd/internal/config"
	"github.com/udisondev/affectd/internal/data"
	"github.com/udisondev/affectd/internal/vfx"
	"github.com/udisondev/affectd/internal/world"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("affectd starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tables", cfg.Tables.Source)

	tables, err := loadTables(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}

	repos, err := data.Bootstrap(tables, cfg.Tables.ResistPrefix)
	if err != nil {
		return fmt.Errorf("bootstrapping tables: %w", err)
	}
	for _, issue := range data.Validate(repos) {
		slog.Warn("table issue", "issue", issue.String())
	}

	vfxService := vfx.New()
	w := world.New(repos.Runtime(vfxService), world.Options{
		Workers:           cfg.Workers,
		ParallelThreshold: cfg.ParallelThreshold,
	})

	sc, err := newScenario(cfg.Scenario, w, cfg.HudSyncInterval)
	if err != nil {
		return fmt.Errorf("preparing scenario: %w", err)
	}
	slog.Info("scenario ready",
		"actors", w.Count(),
		"events", len(cfg.Scenario.Events),
		"duration", cfg.Scenario.Duration)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		slog.Info("starting world tick loop", "tickRate", cfg.TickRate)
		if err := w.Run(gctx, cfg.TickRate); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("world tick loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-sc.Done():
			slog.Info("scenario finished", "ticks", w.Ticks(), "vfxPlaying", vfxService.Count())
			stop()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("host error: %w", err)
	}

	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
