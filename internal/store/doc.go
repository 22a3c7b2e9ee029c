// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the single process-wide database connection.
//
// [Open] selects a driver by the URI scheme (MongoDB or PostgreSQL) and
// returns a [Database]. [Connection] wraps it with a typed
// [ConnectionState], connects with exponential backoff, and monitors the
// connection in the background so route groups can fail fast while the
// database is unreachable.
package store
