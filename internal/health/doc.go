// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package health implements the liveness and readiness probes served on the
// admin listener. Readiness reflects the database connection state and the
// shared rate limit store; liveness only reports that the process serves
// requests.
package health
