// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitness-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedOK     bool
	}{
		{name: "route not found", err: ErrRouteNotFound, expectedStatus: http.StatusNotFound, expectedOK: true},
		{name: "wrapped not implemented", err: fmt.Errorf("%w: auth", ErrGroupNotImplemented), expectedStatus: http.StatusNotImplemented, expectedOK: true},
		{name: "database unavailable", err: ErrDatabaseUnavailable, expectedStatus: http.StatusServiceUnavailable, expectedOK: true},
		{name: "store not connected", err: fmt.Errorf("find: %w", store.ErrNotConnected), expectedStatus: http.StatusServiceUnavailable, expectedOK: true},
		{name: "store connection failed", err: store.ErrConnectionFailed, expectedStatus: http.StatusServiceUnavailable, expectedOK: true},
		{name: "unknown", err: errors.New("boom"), expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := statusFromError(tt.err)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedStatus, status.status)
		})
	}
}

func TestRespondError_UnknownOutsidePipeline(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!"}`, rec.Body.String())
}

func TestRespondError_Known(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, httptest.NewRequest(http.MethodGet, "/", nil), ErrDatabaseUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"database unavailable"}`, rec.Body.String())
}
