// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the uibutton HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Select the contract store (memory, or PostgreSQL with migrations).
//  4. Select the event sink (Redis stream, or the log).
//  5. Load the token verifier when a public key is configured.
//  6. Wire domain services and HTTP handlers.
//  7. Seed contracts from YAML when configured.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/uibutton/internal/api"
	"github.com/taibuivan/uibutton/internal/core/button"
	"github.com/taibuivan/uibutton/internal/core/contract"
	"github.com/taibuivan/uibutton/internal/core/props"
	"github.com/taibuivan/uibutton/internal/core/shared"
	"github.com/taibuivan/uibutton/internal/platform/config"
	"github.com/taibuivan/uibutton/internal/platform/constants"
	"github.com/taibuivan/uibutton/internal/platform/ctxutil"
	"github.com/taibuivan/uibutton/internal/platform/middleware"
	"github.com/taibuivan/uibutton/internal/platform/migration"
	pgstore "github.com/taibuivan/uibutton/internal/platform/postgres"
	redisstore "github.com/taibuivan/uibutton/internal/platform/redis"
	"github.com/taibuivan/uibutton/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.Bool("auth_enabled", cfg.AuthEnabled()),
	)

	// rootCtx lives for the whole process and stops background workers.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Use a 30s deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	var checks []api.DependencyCheck

	// ── 3. Contract Store ─────────────────────────────────────────────────
	var repository contract.Repository = contract.NewMemoryRepository(shared.SystemClock)

	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		repository = contract.NewPostgresRepository(pool, shared.SystemClock)
		checks = append(checks, api.DependencyCheck{
			Name: "postgres",
			Ping: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		})
	}

	// ── 4. Event Sink ─────────────────────────────────────────────────────
	var publisher shared.Publisher = shared.NewLogPublisher(log)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		publisher = shared.NewRedisPublisher(rdb, cfg.EventStream)
		checks = append(checks, api.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	}

	// ── 5. Token Verification ─────────────────────────────────────────────
	var verifier middleware.TokenVerifier
	writeGuard := middleware.Passthrough

	if cfg.AuthEnabled() {
		tokenVerifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "initialize token verifier")

		verifier = tokenVerifier
		writeGuard = middleware.RequireRole(sec.RoleEditor)
	} else {
		log.Warn("auth_disabled", slog.String("reason", "JWT_PUBLIC_KEY_PATH is not set"))
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	buttonService := button.NewService(
		button.NewCreateButtonUseCase(button.NewAccessibilityValidator()),
		publisher,
	)

	contractService := contract.NewService(
		repository,
		contract.NewCreateContractUseCase(contract.NewStandardFactory(shared.SystemClock)),
		publisher,
		contract.NewContractValidator(),
	)

	// ── 7. Seed ───────────────────────────────────────────────────────────
	if cfg.SeedContractsPath != "" {
		seed, err := contract.LoadSeedFile(cfg.SeedContractsPath)
		must(log, err, "load contract seed")

		_, err = contractService.Seed(ctxutil.WithLogger(startupCtx, log), seed)
		must(log, err, "seed contracts")
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Button:    button.NewHandler(buttonService),
		Contract:  contract.NewHandler(contractService, writeGuard),
		Props:     props.NewHandler(),
	}

	server := api.NewServer(rootCtx, cfg, log, verifier, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger every entry of which carries the app name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
