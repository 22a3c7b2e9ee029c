// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoRateLimiter is returned by NewHandlers when the rate limiter is
	// missing. The admission pipeline cannot be built without it.
	errNoRateLimiter = errors.New("no rate limiter is configured")

	// errNoProbes is returned by NewHandlers when an admin address is set
	// but no health checker was provided.
	errNoProbes = errors.New("admin listener requires health probes")
)
