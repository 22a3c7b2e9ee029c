// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the connection bootstrapper whether a failed
// attempt is worth repeating.
type ErrorClassification int

const (
	// NonRetryable stops the reconnect loop: bad credentials, unknown
	// database, and any server error not listed as transient.
	NonRetryable ErrorClassification = iota

	// Retryable keeps the reconnect loop going.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}

	return "non-retryable"
}

// transientPgCodes lists the SQLSTATE codes after which a new attempt may
// succeed: connection exceptions (class 08), transaction rollbacks
// (class 40), too many connections (53300) and operator intervention
// during shutdown or startup (class 57).
var transientPgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:                           {},
	pgerrcode.ConnectionDoesNotExist:                        {},
	pgerrcode.ConnectionFailure:                             {},
	pgerrcode.SQLClientUnableToEstablishSQLConnection:       {},
	pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection: {},
	pgerrcode.TransactionRollback:                           {},
	pgerrcode.SerializationFailure:                          {},
	pgerrcode.DeadlockDetected:                              {},
	pgerrcode.TooManyConnections:                            {},
	pgerrcode.AdminShutdown:                                 {},
	pgerrcode.CrashShutdown:                                 {},
	pgerrcode.CannotConnectNow:                              {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for server errors
// returned by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [Retryable] only for a *pgconn.PgError anywhere in the
// chain whose code is transient.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if _, ok := transientPgCodes[pgErr.Code]; ok {
		return Retryable
	}

	return NonRetryable
}
