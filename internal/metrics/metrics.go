// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"strconv"
	"time"

	"github.com/MKhiriev/fitness-api/internal/ratelimit"
	"github.com/MKhiriev/fitness-api/internal/store"
	"github.com/MKhiriev/fitness-api/models"
)

// Rate limit outcomes.
const (
	OutcomeAllowed  = "allowed"
	OutcomeRejected = "rejected"
	OutcomeDegraded = "degraded"
)

var connectionStates = []store.ConnectionState{
	store.StateConnecting,
	store.StateConnected,
	store.StateDisconnected,
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordResponseSize records the size of a response body.
func (r *Registry) RecordResponseSize(method, route string, size float64) {
	r.HTTPResponseSize.WithLabelValues(method, route).Observe(size)
}

func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordRateLimitDecision counts one limiter decision. A degraded decision
// (store failure, request admitted) is counted as degraded only.
func (r *Registry) RecordRateLimitDecision(d ratelimit.Decision) {
	outcome := OutcomeAllowed
	switch {
	case d.Degraded:
		outcome = OutcomeDegraded
	case !d.Allowed:
		outcome = OutcomeRejected
	}

	r.RateLimitDecisionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveFault counts a fault contained by the pipeline.
func (r *Registry) ObserveFault(status int) {
	r.FaultsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ObserveConnectionState sets the database state gauge.
func (r *Registry) ObserveConnectionState(state store.ConnectionState) {
	for _, s := range connectionStates {
		value := 0.0
		if s == state {
			value = 1
		}
		r.DBConnectionState.WithLabelValues(s.String()).Set(value)
	}
}

// SetBuildInfo exports the build metadata of the running binary.
func (r *Registry) SetBuildInfo(info models.AppBuildInfo) {
	r.BuildInfo.WithLabelValues(info.Version(), info.Date(), info.Commit()).Set(1)
}
