// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, rw.status)
	assert.Equal(t, 0, rw.size)
	assert.Equal(t, http.StatusOK, rw.statusCode(), "nothing written reads as 200")
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name           string
		codes          []int
		expectedStatus int
	}{
		{name: "single 201", codes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "429 from limiter", codes: []int{http.StatusTooManyRequests}, expectedStatus: http.StatusTooManyRequests},
		{name: "second call ignored", codes: []int{http.StatusNotFound, http.StatusOK}, expectedStatus: http.StatusNotFound},
		{name: "503 then 500", codes: []int{http.StatusServiceUnavailable, http.StatusInternalServerError}, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			rw := newResponseWriter(rr)

			for _, code := range tt.codes {
				rw.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, rw.statusCode())
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name           string
		preStatus      int
		writes         []string
		expectedStatus int
		expectedSize   int
	}{
		{name: "implicit 200", writes: []string{`{"ok":true}`}, expectedStatus: http.StatusOK, expectedSize: 11},
		{name: "explicit status kept", preStatus: http.StatusCreated, writes: []string{"a", "bc"}, expectedStatus: http.StatusCreated, expectedSize: 3},
		{name: "empty write", writes: []string{""}, expectedStatus: http.StatusOK, expectedSize: 0},
		{name: "no writes", preStatus: http.StatusNoContent, expectedStatus: http.StatusNoContent, expectedSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			rw := newResponseWriter(rr)

			if tt.preStatus != 0 {
				rw.WriteHeader(tt.preStatus)
			}
			body := ""
			for _, chunk := range tt.writes {
				n, err := rw.Write([]byte(chunk))
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n)
				body += chunk
			}

			assert.Equal(t, tt.expectedStatus, rw.statusCode())
			assert.Equal(t, tt.expectedSize, rw.size)
			assert.Equal(t, body, rr.Body.String())
		})
	}
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	rw.Header().Set("Retry-After", "900")
	rw.WriteHeader(http.StatusTooManyRequests)

	assert.Equal(t, "900", rr.Header().Get("Retry-After"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	assert.Same(t, rr, rw.Unwrap())
}
