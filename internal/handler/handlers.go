// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/handler/admin"
	"github.com/MKhiriev/fitness-api/internal/handler/http"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/metrics"
)

// Handlers groups the transport handlers of the gateway. Admin is nil when
// no admin address is configured.
type Handlers struct {
	HTTP  *http.Handler
	Admin *admin.Handler
}

// Dependencies are the collaborators shared by the transport handlers.
// Metrics is optional; Probes is required when the admin listener is
// configured.
type Dependencies struct {
	HTTP    http.Dependencies
	Metrics *metrics.Registry
	Probes  admin.Probes
}

func NewHandlers(cfg *config.StructuredConfig, deps Dependencies, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if deps.HTTP.Limiter == nil {
		return nil, errNoRateLimiter
	}

	httpDeps := deps.HTTP
	if deps.Metrics != nil {
		httpDeps.Metrics = deps.Metrics
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(cfg, httpDeps, logger),
	}

	if cfg.Admin.Address != "" {
		if deps.Probes == nil {
			return nil, errNoProbes
		}

		var exposition nethttp.Handler
		if deps.Metrics != nil {
			exposition = deps.Metrics.Handler()
		}
		handlers.Admin = admin.NewHandler(exposition, deps.Probes, logger)
	}

	return handlers, nil
}
