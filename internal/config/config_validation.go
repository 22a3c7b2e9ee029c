// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// normalize folds legacy aliases into their canonical fields.
func (cfg *StructuredConfig) normalize() {
	if cfg.Storage.DB.URI == "" {
		cfg.Storage.DB.URI = cfg.Storage.DB.LegacyURI
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Rules are declared
// with `validate` struct tags.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists every failed field otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
