// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitness-api/internal/health"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/metrics"
	"github.com/MKhiriev/fitness-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(readyErr error) *health.HealthChecker {
	hc := health.NewHealthChecker("1.0.0")
	hc.RegisterReadinessCheck("database", health.PingCheck("database", func(context.Context) error {
		return readyErr
	}, false))
	return hc
}

func TestHandler_Healthz(t *testing.T) {
	router := NewHandler(nil, newTestChecker(errors.New("down")), logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.StatusHealthy, body.Status)
	assert.Equal(t, "1.0.0", body.Version)
}

func TestHandler_Readyz(t *testing.T) {
	tests := []struct {
		name           string
		readyErr       error
		expectedStatus int
		expectedHealth models.HealthStatus
	}{
		{
			name:           "database reachable",
			expectedStatus: http.StatusOK,
			expectedHealth: models.StatusHealthy,
		},
		{
			name:           "database down",
			readyErr:       errors.New("connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: models.StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewHandler(nil, newTestChecker(tt.readyErr), logger.Nop()).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body models.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedHealth, body.Status)
			assert.Contains(t, body.Checks, "database")
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.ObserveFault(http.StatusInternalServerError)

	router := NewHandler(reg.Handler(), newTestChecker(nil), logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fitness_api_faults_total{status="500"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHandler_MetricsDisabled(t *testing.T) {
	router := NewHandler(nil, newTestChecker(nil), logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestHandler_HeadProbe(t *testing.T) {
	router := NewHandler(nil, newTestChecker(nil), logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
