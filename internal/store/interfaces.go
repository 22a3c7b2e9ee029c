// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/database_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
)

// Database is an open connection pool to one of the supported backends.
type Database interface {
	// Name returns the driver name ("mongodb" or "postgres").
	Name() string

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases the pool.
	Close(ctx context.Context) error
}

// Opener opens a [Database] for cfg. [Open] is the production opener.
type Opener func(ctx context.Context, cfg config.DB, log *logger.Logger) (Database, error)

// ErrorClassificator decides whether a failed operation is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// StateObserver is notified about every connection state change.
type StateObserver interface {
	ObserveConnectionState(state ConnectionState)
}
