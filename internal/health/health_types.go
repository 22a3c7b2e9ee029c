// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package health

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fitness-api/models"
)

// defaultCheckTimeout bounds a single check.
const defaultCheckTimeout = 2 * time.Second

// CheckFunc performs one health check.
type CheckFunc func(ctx context.Context) models.CheckResult

// HealthChecker runs the registered checks for the probe endpoints.
type HealthChecker struct {
	version   string
	startedAt time.Time
	timeout   time.Duration

	mu          sync.RWMutex
	readyChecks map[string]CheckFunc
	liveChecks  map[string]CheckFunc
}
