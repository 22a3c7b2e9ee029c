// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitness-api/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name         string
		data         any
		status       int
		expectedBody string
	}{
		{
			name:         "welcome payload",
			data:         models.WelcomeResponse{Message: "Welcome to the Fitness App API", Version: "1.0.0", Documentation: "/api"},
			status:       http.StatusOK,
			expectedBody: `{"message":"Welcome to the Fitness App API","version":"1.0.0","documentation":"/api"}`,
		},
		{
			name:         "rate limit payload",
			data:         models.RateLimitResponse{Error: "too many requests, please try again later", RetryAfterSeconds: 900},
			status:       http.StatusTooManyRequests,
			expectedBody: `{"error":"too many requests, please try again later","retryAfterSeconds":900}`,
		},
		{
			name:         "empty slice",
			data:         []string{},
			status:       http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "nil",
			data:         nil,
			status:       http.StatusAccepted,
			expectedBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != len(tt.expectedBody) {
				t.Errorf("expected %d bytes written, got %d", len(tt.expectedBody), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}
			if w.Body.String() != tt.expectedBody {
				t.Errorf("expected body %s, got %s", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if n != 0 {
		t.Errorf("expected 0 bytes reported, got %d", n)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if got := w.Body.String(); got != `{"error":"Something went wrong!"}` {
		t.Errorf("expected generic error body, got %s", got)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteError(w, http.StatusServiceUnavailable, "database unavailable"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}
	if got := w.Body.String(); got != `{"error":"database unavailable"}` {
		t.Errorf("unexpected body %s", got)
	}
}
