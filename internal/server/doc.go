// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the gateway's listeners.
//
// It provides orchestration for the public and admin HTTP server lifecycles
// and the background workers, including startup, signal handling, and
// graceful shutdown bounded by the configured timeout.
package server
