// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
)

// Open connects to the database named by cfg.URI. The scheme selects the
// driver: mongodb:// and mongodb+srv:// use the MongoDB driver, postgres://
// and postgresql:// use pgx through database/sql.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (Database, error) {
	scheme, err := uriScheme(cfg.URI)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case "mongodb", "mongodb+srv":
		return NewConnectMongo(ctx, cfg, log)
	case "postgres", "postgresql":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

func uriScheme(uri string) (string, error) {
	if strings.TrimSpace(uri) == "" {
		return "", ErrNoDatabaseURI
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	return strings.ToLower(u.Scheme), nil
}

// redactURI hides credentials before a URI is logged.
func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<unparsable>"
	}

	return u.Redacted()
}
