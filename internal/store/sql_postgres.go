// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresDB is a [Database] backed by pgx through database/sql.
type PostgresDB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*PostgresDB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.URI)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxPoolSize)
	conn.SetMaxIdleConns(max(cfg.MaxPoolSize/2, 1))

	db := newPostgresDB(conn, log)

	// ping database
	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *PostgresDB {
	return &PostgresDB{
		DB:     conn,
		logger: log,
	}
}

func (db *PostgresDB) Name() string {
	return "postgres"
}

func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *PostgresDB) Close(_ context.Context) error {
	return db.DB.Close()
}
