// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package health

import (
	"context"

	"github.com/MKhiriev/fitness-api/internal/store"
	"github.com/MKhiriev/fitness-api/models"
)

// DatabaseSource exposes the connection state and the open database.
// [store.Connection] implements it.
type DatabaseSource interface {
	State() store.ConnectionState
	Database() (store.Database, error)
}

// DatabaseCheck reports the database healthy only when the connection is
// established and answers a ping.
func DatabaseCheck(source DatabaseSource) CheckFunc {
	return func(ctx context.Context) models.CheckResult {
		check := models.CheckResult{
			Name: "database",
		}

		if state := source.State(); state != store.StateConnected {
			check.Status = models.StatusUnhealthy
			check.Message = state.String()
			return check
		}

		db, err := source.Database()
		if err != nil {
			check.Status = models.StatusUnhealthy
			check.Message = err.Error()
			return check
		}

		if err = db.Ping(ctx); err != nil {
			check.Status = models.StatusUnhealthy
			check.Message = err.Error()
			return check
		}

		check.Status = models.StatusHealthy
		check.Message = db.Name() + " connected"
		return check
	}
}

// PingCheck wraps a plain ping function. A failure is reported as degraded
// when degradeOnly is set, e.g. for the rate limit store which fails open.
func PingCheck(name string, ping func(ctx context.Context) error, degradeOnly bool) CheckFunc {
	return func(ctx context.Context) models.CheckResult {
		check := models.CheckResult{
			Name:   name,
			Status: models.StatusHealthy,
		}

		if err := ping(ctx); err != nil {
			check.Status = models.StatusUnhealthy
			if degradeOnly {
				check.Status = models.StatusDegraded
			}
			check.Message = err.Error()
		}

		return check
	}
}
