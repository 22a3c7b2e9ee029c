// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the public handler: the route table, the admission pipeline
// around it and the outer tracing, logging and metrics middleware.
func (h *Handler) Init() http.Handler {
	opts := []pipeline.Option{pipeline.WithBaseHeaders(securityHeaderSet())}
	if h.metrics != nil {
		opts = append(opts, pipeline.WithFaultObserver(h.metrics))
	}

	p := pipeline.New(h.newRouter(), h.stages(), opts...)
	h.logger.Info().Strs("stages", p.StageNames()).Msg("admission pipeline built")

	return chi.Chain(h.withTraceID, h.withLogging, h.withMetrics).Handler(p)
}

// newRouter builds the immutable route table.
func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.GetHead)

	// informational routes
	router.Get("/", h.welcome)
	router.Get("/api", h.apiDescriptor)

	// route groups
	for _, spec := range groupSpecs {
		handler := h.groups.handler(spec.Name)
		if handler == nil {
			handler = notImplemented(spec.Name)
		}
		if spec.DatabaseBacked {
			handler = h.requireDatabase(handler)
		}

		router.Mount(spec.Prefix, handler)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
