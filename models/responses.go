// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every error answer produced by the gateway
// itself (not found, faults, unavailable database).
type ErrorResponse struct {
	Error string `json:"error"`
}

// RateLimitResponse is the body of a 429 answer. RetryAfterSeconds mirrors
// the Retry-After header.
type RateLimitResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int64  `json:"retryAfterSeconds"`
}
