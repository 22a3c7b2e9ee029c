// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the route table. Callers can match against
// them with [errors.Is].
var (
	// ErrGroupNotImplemented is returned for a route group mounted without a
	// collaborator handler.
	ErrGroupNotImplemented = errors.New("route group is not implemented")

	// ErrDatabaseUnavailable is returned by database-backed groups while the
	// connection is not established.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrRouteNotFound is returned for paths outside the route table.
	ErrRouteNotFound = errors.New("route not found")
)
