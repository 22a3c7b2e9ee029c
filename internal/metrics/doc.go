// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the gateway and the
// handler that exposes them on the admin listener.
package metrics
