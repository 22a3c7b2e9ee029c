// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin serves the operational endpoints of the gateway: Prometheus
// metrics and the liveness and readiness probes.
package admin
