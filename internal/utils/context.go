// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, identifier
// generation and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// BodyCtxKey is the key under which the body parser stores the decoded JSON
// request body. Use GetBodyFromContext to read it.
var BodyCtxKey = contextKey("body")

// ClientIDCtxKey is the key under which the rate limit stage stores the
// client identity it keyed the request by.
var ClientIDCtxKey = contextKey("clientID")

// GetBodyFromContext retrieves the decoded JSON request body.
//
// Returns the value produced by encoding/json (map[string]any for objects,
// []any for arrays) and an ok flag:
//   - ok is true when the body parser ran for this request
//   - ok is false when the request was not JSON or was not parsed
//
// Example usage:
//
//	body, ok := utils.GetBodyFromContext(r.Context())
//	if !ok {
//	    // not a JSON request
//	}
func GetBodyFromContext(ctx context.Context) (any, bool) {
	body := ctx.Value(BodyCtxKey)
	return body, body != nil
}

// GetClientIDFromContext retrieves the client identity used by the rate
// limiter.
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}
