// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/handler"
	httphandler "github.com/MKhiriev/fitness-api/internal/handler/http"
	"github.com/MKhiriev/fitness-api/internal/health"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/metrics"
	"github.com/MKhiriev/fitness-api/internal/ratelimit"
	"github.com/MKhiriev/fitness-api/internal/server"
	"github.com/MKhiriev/fitness-api/internal/store"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/MKhiriev/fitness-api/internal/workers"
	"github.com/MKhiriev/fitness-api/models"
)

const redisConnectTimeout = 5 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("fitness-api")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if !log.SetLevel(cfg.Log.Level) {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, keeping the current one")
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	registry := metrics.NewRegistry()
	registry.SetBuildInfo(buildInfo)
	checker := health.NewHealthChecker(cfg.App.Version)
	bg := workers.NewWorkers()

	// database connection
	conn := store.NewConnection(cfg.Storage.DB, log, store.WithStateObserver(registry))
	if cfg.Storage.DB.StartupMode == config.StartupModeFailFast {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.DB.StartupTimeout)
		err = conn.Connect(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
	}
	bg.Add(conn)
	checker.RegisterReadinessCheck("database", health.DatabaseCheck(conn))

	// rate limiter
	limitStore, closeLimitStore, err := newRateLimitStore(cfg.RateLimit, checker, bg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limit store")
	}
	limiter := ratelimit.NewLimiter(limitStore, cfg.RateLimit.Window, cfg.RateLimit.Max, log)
	log.Info().
		Dur("window", limiter.Window()).
		Int("ceiling", limiter.Ceiling()).
		Str("store", cfg.RateLimit.Store).
		Msg("rate limiter configured")

	handlers, err := handler.NewHandlers(cfg, handler.Dependencies{
		HTTP: httphandler.Dependencies{
			Database: conn,
			Limiter:  limiter,
			TraceIDs: utils.NewUUIDGenerator(),
		},
		Metrics: registry,
		Probes:  checker,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, bg, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err = conn.Close(ctx); err != nil {
		log.Err(err).Msg("error closing database connection")
	}
	closeLimitStore()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

// newRateLimitStore builds the configured window store. The memory store
// gets a janitor worker, the redis store a degrade-only readiness check.
func newRateLimitStore(cfg config.RateLimit, checker *health.HealthChecker, bg *workers.Workers, log *logger.Logger) (ratelimit.Store, func(), error) {
	switch cfg.Store {
	case config.RateLimitStoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
		defer cancel()

		redisStore, err := ratelimit.NewRedisStoreFromURL(ctx, cfg.RedisURL, cfg.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		checker.RegisterReadinessCheck("rate_limit_store", health.PingCheck("rate_limit_store", redisStore.Ping, true))

		log.Info().Msg("rate limit windows are kept in redis")
		return redisStore, func() {
			if err := redisStore.Close(); err != nil {
				log.Err(err).Msg("error closing rate limit store")
			}
		}, nil

	default:
		memoryStore := ratelimit.NewMemoryStore()
		bg.Add(ratelimit.NewJanitor(memoryStore, cfg.CleanupInterval, log))

		log.Info().Msg("rate limit windows are kept in memory")
		return memoryStore, func() {}, nil
	}
}
