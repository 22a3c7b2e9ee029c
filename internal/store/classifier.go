// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConnectErrorClassifier classifies failed connection attempts. Server
// errors are classified by their SQLSTATE; configuration errors are never
// retried; anything else (refused connections, DNS, timeouts) is.
type ConnectErrorClassifier struct {
	postgres *PostgresErrorClassifier
}

func NewConnectErrorClassifier() *ConnectErrorClassifier {
	return &ConnectErrorClassifier{postgres: NewPostgresErrorClassifier()}
}

func (c *ConnectErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, ErrNoDatabaseURI) ||
		errors.Is(err, ErrUnsupportedScheme) ||
		errors.Is(err, ErrInvalidURI) {
		return NonRetryable
	}

	var parseErr *pgconn.ParseConfigError
	if errors.As(err, &parseErr) {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return c.postgres.Classify(pgErr)
	}

	return Retryable
}
