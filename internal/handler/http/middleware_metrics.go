// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fitness-api/internal/ratelimit"
)

// routeOther labels requests outside the route table.
const routeOther = "other"

// MetricsRecorder records request, rate limit and fault metrics.
// [metrics.Registry] implements it.
type MetricsRecorder interface {
	RecordHTTPRequest(method, route, status string, duration time.Duration)
	RecordResponseSize(method, route string, size float64)
	IncHTTPRequestsInFlight()
	DecHTTPRequestsInFlight()
	RecordRateLimitDecision(d ratelimit.Decision)
	ObserveFault(status int)
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		h.metrics.IncHTTPRequestsInFlight()
		defer h.metrics.DecHTTPRequestsInFlight()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := routeLabel(r.URL.Path)

		h.metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(mw.statusCode()), time.Since(start))
		h.metrics.RecordResponseSize(r.Method, route, float64(mw.size))
	})
}

// routeLabel maps a request path to a bounded label: the informational
// routes, a group prefix or [routeOther].
func routeLabel(path string) string {
	if path == "/" || path == "/api" {
		return path
	}

	for _, spec := range groupSpecs {
		if path == spec.Prefix || strings.HasPrefix(path, spec.Prefix+"/") {
			return spec.Prefix
		}
	}

	return routeOther
}
