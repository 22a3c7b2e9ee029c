// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package health

import (
	"context"
	"time"

	"github.com/MKhiriev/fitness-api/models"
)

// NewHealthChecker creates a checker reporting version in every response.
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{
		version:     version,
		startedAt:   time.Now(),
		timeout:     defaultCheckTimeout,
		readyChecks: make(map[string]CheckFunc),
		liveChecks:  make(map[string]CheckFunc),
	}
}

// RegisterReadinessCheck registers a readiness check.
func (hc *HealthChecker) RegisterReadinessCheck(name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.readyChecks[name] = check
}

// RegisterLivenessCheck registers a liveness check.
func (hc *HealthChecker) RegisterLivenessCheck(name string, check CheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.liveChecks[name] = check
}

// CheckReadiness performs readiness checks.
func (hc *HealthChecker) CheckReadiness(ctx context.Context) models.HealthResponse {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	return hc.performChecks(ctx, hc.readyChecks)
}

// CheckLiveness performs liveness checks.
func (hc *HealthChecker) CheckLiveness(ctx context.Context) models.HealthResponse {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	return hc.performChecks(ctx, hc.liveChecks)
}

func (hc *HealthChecker) performChecks(ctx context.Context, checks map[string]CheckFunc) models.HealthResponse {
	response := models.HealthResponse{
		Status:    models.StatusHealthy,
		Version:   hc.version,
		Uptime:    time.Since(hc.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	}
	if len(checks) == 0 {
		return response
	}

	response.Checks = make(map[string]models.CheckResult, len(checks))
	for name, checkFunc := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, hc.timeout)
		start := time.Now()
		result := checkFunc(checkCtx)
		result.Latency = time.Since(start)
		cancel()

		if result.Name == "" {
			result.Name = name
		}
		response.Checks[name] = result

		// worst status wins
		if result.Status == models.StatusUnhealthy {
			response.Status = models.StatusUnhealthy
		} else if result.Status == models.StatusDegraded && response.Status != models.StatusUnhealthy {
			response.Status = models.StatusDegraded
		}
	}

	return response
}
