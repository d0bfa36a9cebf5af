package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/gourmet/internal/client/api"
	"github.com/iudanet/gourmet/internal/client/auth"
	"github.com/iudanet/gourmet/internal/client/catalog"
	"github.com/iudanet/gourmet/internal/client/cli"
	"github.com/iudanet/gourmet/internal/client/config"
	"github.com/iudanet/gourmet/internal/client/favorites"
	"github.com/iudanet/gourmet/internal/client/iocli"
	"github.com/iudanet/gourmet/internal/client/storage"
	"github.com/iudanet/gourmet/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := iocli.NewStdio()
	app := cli.NewApp(stdio, cli.VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}, setup(stdio))

	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger creates a slog logger backed by charmbracelet/log on stderr.
func newLogger(level slog.Level) *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.Level(level),
	})
	return slog.New(handler)
}

// setup wires the client core for one command run.
func setup(out iocli.IO) cli.Setup {
	return func(ctx context.Context, cfg *config.Config) (*cli.Cli, func(), error) {
		logger := newLogger(cfg.Level())
		slog.SetDefault(logger)

		// Открываем BoltDB storage. Без него сессия живет только до выхода.
		var backend storage.KeyValueStorage
		boltStorage, err := boltdb.New(ctx, cfg.DBPath, cfg.Profile)
		if err != nil {
			logger.Warn("failed to open session database, session will not be saved",
				"path", cfg.DBPath,
				"error", err)
		} else {
			backend = boltStorage
		}

		registry := prometheus.NewRegistry()
		metrics, err := api.NewMetrics(registry)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
		}

		// Создаем API клиент
		apiClient := api.NewClient(cfg.ServerURL,
			api.WithTimeout(cfg.Timeout),
			api.WithRateLimit(cfg.RateLimit, cfg.Burst),
			api.WithLogger(logger),
			api.WithMetrics(metrics),
		)

		store := auth.NewStore(backend, logger)
		manager := auth.NewManager(ctx, apiClient, store, logger)
		synchronizer := favorites.New(apiClient, manager, favorites.WithLogger(logger))
		manager.Subscribe(synchronizer)
		reader := catalog.NewReader(apiClient, logger)

		c := cli.New(out, manager, synchronizer, reader,
			cli.WithLogger(logger),
			cli.WithServerURL(apiClient.BaseURL()),
		)

		cleanup := func() {
			if cfg.MetricsFile != "" {
				if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
					logger.Error("failed to write metrics", "path", cfg.MetricsFile, "error", err)
				}
			}
			if backend != nil {
				if err := backend.Close(); err != nil {
					logger.Error("failed to close database", "error", err)
				}
			}
		}

		return c, cleanup, nil
	}
}
