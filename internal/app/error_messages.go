// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fitness-api pipeline, handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgSomethingWentWrong is the only text a client ever sees for an
	// unexpected server-side fault.
	MsgSomethingWentWrong = "Something went wrong!"

	// MsgInvalidJSONBody is returned when a JSON request body cannot be
	// decoded.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	MsgBodyTooLarge = "request entity too large"

	// MsgUnsupportedEncoding is returned when the request body uses a
	// Content-Encoding other than gzip, deflate or identity.
	MsgUnsupportedEncoding = "unsupported content encoding"

	// MsgTooManyRequests is returned when a client exhausts its rate limit
	// window.
	MsgTooManyRequests = "too many requests, please try again later"

	// MsgNotFound is returned for paths outside the route table and for
	// methods a route does not handle.
	MsgNotFound = "not found"

	// MsgDatabaseUnavailable is returned by database-backed route groups
	// while the connection is not established.
	MsgDatabaseUnavailable = "database unavailable"

	// MsgNotImplemented is returned by route groups that have no handler
	// attached.
	MsgNotImplemented = "not implemented"
)

// Welcome and descriptor texts of the informational endpoints.
const (
	MsgWelcome     = "Welcome to the Fitness App API"
	MsgAPITitle    = "Fitness App API"
	WelcomeDocPath = "/api"
)
