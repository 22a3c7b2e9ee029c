// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/app"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Probes serves the liveness and readiness endpoints.
// [health.HealthChecker] implements it.
type Probes interface {
	LivenessHandler() http.HandlerFunc
	ReadinessHandler() http.HandlerFunc
}

// Handler is the operational transport handler. It is served on its own
// listener so the public route table stays unchanged.
type Handler struct {
	// metrics serves the Prometheus exposition. Optional.
	metrics http.Handler

	// probes serves /healthz and /readyz.
	probes Probes

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. metrics may be nil, in which case
// /metrics is not registered.
func NewHandler(metrics http.Handler, probes Probes, logger *logger.Logger) *Handler {
	logger.Debug().Msg("admin handler created")
	return &Handler{
		metrics: metrics,
		probes:  probes,
		logger:  logger,
	}
}

// Init builds the admin router.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.GetHead, middleware.Recoverer)

	router.Get("/healthz", h.probes.LivenessHandler())
	router.Get("/readyz", h.probes.ReadinessHandler())
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteError(w, http.StatusNotFound, app.MsgNotFound)
	})

	return router
}
