// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/ratelimit"
)

// DatabaseState reports whether the database connection is established.
// [store.Connection] implements it.
type DatabaseState interface {
	Ready() bool
}

// IDGenerator produces trace ids for requests that arrive without one.
type IDGenerator interface {
	Generate() string
}

// Dependencies are the collaborators of the HTTP handler. Metrics is
// optional.
type Dependencies struct {
	Groups   RouteGroups
	Database DatabaseState
	Limiter  *ratelimit.Limiter
	Metrics  MetricsRecorder
	TraceIDs IDGenerator
}

type Handler struct {
	cfg *config.StructuredConfig

	groups   RouteGroups
	database DatabaseState
	limiter  *ratelimit.Limiter
	keyFunc  ratelimit.KeyFunc
	metrics  MetricsRecorder
	traceIDs IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewHandler(cfg *config.StructuredConfig, deps Dependencies, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:      cfg,
		groups:   deps.Groups,
		database: deps.Database,
		limiter:  deps.Limiter,
		keyFunc:  ratelimit.DefaultKeyFunc(cfg.Server.TrustProxy),
		metrics:  deps.Metrics,
		traceIDs: deps.TraceIDs,
		now:      time.Now,
		logger:   logger,
	}
}
