// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the connection bootstrapper. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNoDatabaseURI is returned when no connection URI is configured.
	ErrNoDatabaseURI = errors.New("database uri is not configured")

	// ErrUnsupportedScheme is returned when the URI scheme selects no known
	// driver.
	ErrUnsupportedScheme = errors.New("unsupported database uri scheme")

	// ErrInvalidURI is returned when the driver rejects the URI or options.
	ErrInvalidURI = errors.New("invalid database uri")

	// ErrConnectionFailed wraps the last error of a failed connect series.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrNotConnected is returned by operations that need an open database.
	ErrNotConnected = errors.New("database is not connected")
)
