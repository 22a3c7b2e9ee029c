// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the gateway configuration.
//
// Sources are merged in priority order, earlier sources winning for
// non-zero fields:
//  1. Environment variables (PORT, DATABASE_URI, RATE_LIMIT_*, CORS_*, ...),
//     after an optional .env file has been loaded
//  2. Command-line flags
//  3. JSON config file (-c or CONFIG)
//  4. Built-in defaults ([Default])
//
// The merged result is validated with go-playground/validator. The entry
// point is [GetStructuredConfig].
package config
