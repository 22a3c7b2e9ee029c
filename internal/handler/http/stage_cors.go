// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/pipeline"
	"github.com/go-chi/cors"
)

// newCORSStage applies the cross-origin policy. Preflight requests end in
// this stage; actual requests continue with the CORS headers attached.
func newCORSStage(cfg config.CORS) pipeline.Stage {
	return pipeline.FromMiddleware(StageCORS, cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}))
}
