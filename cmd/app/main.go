package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/farrow-dev/SkullPit_Go/internal/config"
	"github.com/farrow-dev/SkullPit_Go/internal/eligibility"
	"github.com/farrow-dev/SkullPit_Go/internal/event"
	"github.com/farrow-dev/SkullPit_Go/internal/game"
	"github.com/farrow-dev/SkullPit_Go/internal/handler"
	"github.com/farrow-dev/SkullPit_Go/internal/metrics"
	"github.com/farrow-dev/SkullPit_Go/internal/reel"
	"github.com/farrow-dev/SkullPit_Go/internal/round"
	"github.com/farrow-dev/SkullPit_Go/internal/server"
	"github.com/farrow-dev/SkullPit_Go/internal/shop"
	"github.com/farrow-dev/SkullPit_Go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	// Storage backend
	var st store.Store
	switch cfg.SaveStore {
	case config.StorePostgres:
		pool, err := store.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		st = store.NewPostgresStore(pool)
	default:
		slog.Info("Using in-memory save store; runs will not survive restarts")
		st = store.NewMemoryStore()
	}

	// Telemetry: in-process bus, metrics subscriber, resilient outward publisher
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		slog.Error("Failed to register event metrics", "error", err)
		os.Exit(1)
	}
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     event.RetryMaxAttempts,
		RetryDelay:     event.RetryInitialDelaySeconds * time.Second,
		DeadLetterPath: cfg.DeadLetterPath,
	})

	// Unlock-eligibility collaborator (optional)
	var eligibilityProvider game.EligibilityProvider
	if cfg.UnlocksAPIURL != "" {
		eligibilityProvider = eligibility.NewClient(cfg.UnlocksAPIURL, cfg.APIKey)
		slog.Info("Shop unlock gating enabled", "url", cfg.UnlocksAPIURL)
	}

	sessions := game.NewSessionManager(
		cfg.SessionCacheSize,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		st,
	)

	gameService := game.NewService(
		round.NewService(),
		shop.NewService(),
		reel.NewGenerator(),
		sessions,
		st,
		publisher,
		eligibilityProvider,
	)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, st, gameService)

	// Graceful shutdown on SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

// setupLogger configures structured logging to stdout.
func setupLogger(level string) {
	var slogLevel slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)
}
