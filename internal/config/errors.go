// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
	// configuration violates a validation rule (for example, a zero rate
	// limit window or a fail-fast startup mode without a database URI).
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidAddress is returned by [NetAddress.Set] for malformed
	// host:port values.
	ErrInvalidAddress = errors.New("invalid network address")
)
