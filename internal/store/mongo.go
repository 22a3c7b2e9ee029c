// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// defaultMongoDatabase is used when the URI names no database.
const defaultMongoDatabase = "fitness"

// MongoDB is a [Database] backed by the official MongoDB driver. Route
// group collaborators reach collections through [MongoDB.Database].
type MongoDB struct {
	client   *mongo.Client
	database string
	logger   *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	database := cs.Database
	if database == "" {
		database = defaultMongoDatabase
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize)).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	// establish connection
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", database).Msg("connected to database successfully")

	return &MongoDB{
		client:   client,
		database: database,
		logger:   log,
	}, nil
}

func (m *MongoDB) Name() string {
	return "mongodb"
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Client returns the underlying driver client.
func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

// Database returns the database named in the URI (or "fitness").
func (m *MongoDB) Database() *mongo.Database {
	return m.client.Database(m.database)
}
