// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package health

import (
	"net/http"

	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/utils"
	"github.com/MKhiriev/fitness-api/models"
)

// ReadinessHandler answers 200 unless a readiness check is unhealthy.
func (hc *HealthChecker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.CheckReadiness(r.Context())
		writeResponse(w, r, response)
	}
}

// LivenessHandler answers 200 unless a liveness check is unhealthy.
func (hc *HealthChecker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.CheckLiveness(r.Context())
		writeResponse(w, r, response)
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, response models.HealthResponse) {
	status := http.StatusOK
	if response.Status == models.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
