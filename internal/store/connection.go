// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/sethvargo/go-retry"
)

// Connection owns the process-wide database handle. It is created once at
// startup, shared by every route group, and closed on shutdown.
//
// The state starts as [StateConnecting]. [Connection.Connect] runs a connect
// series with exponential backoff; [Connection.Run] does the same in the
// background and then monitors the connection with periodic pings.
type Connection struct {
	cfg        config.DB
	open       Opener
	classifier ErrorClassificator
	observer   StateObserver
	logger     *logger.Logger

	state atomic.Int32

	mu sync.RWMutex
	db Database
}

// ConnectionOption configures a [Connection].
type ConnectionOption func(*Connection)

// WithOpener replaces [Open], mainly for tests.
func WithOpener(open Opener) ConnectionOption {
	return func(c *Connection) {
		c.open = open
	}
}

// WithClassifier replaces the [ConnectErrorClassifier].
func WithClassifier(classifier ErrorClassificator) ConnectionOption {
	return func(c *Connection) {
		c.classifier = classifier
	}
}

// WithStateObserver registers an observer for state changes.
func WithStateObserver(observer StateObserver) ConnectionOption {
	return func(c *Connection) {
		c.observer = observer
	}
}

func NewConnection(cfg config.DB, log *logger.Logger, opts ...ConnectionOption) *Connection {
	c := &Connection{
		cfg:        cfg,
		open:       Open,
		classifier: NewConnectErrorClassifier(),
		logger:     log,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.setState(StateConnecting)

	return c
}

// State returns the current connection state. Safe for concurrent use.
func (c *Connection) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// Ready reports whether the connection is established.
func (c *Connection) Ready() bool {
	return c.State() == StateConnected
}

// Database returns the open database or [ErrNotConnected].
func (c *Connection) Database() (Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil || !c.Ready() {
		return nil, ErrNotConnected
	}

	return c.db, nil
}

// Connect opens the database, retrying retryable failures with exponential
// backoff until it succeeds, ctx is done or a non-retryable error occurs.
func (c *Connection) Connect(ctx context.Context) error {
	c.setState(StateConnecting)
	c.logger.Info().Str("uri", redactURI(c.cfg.URI)).Msg("connecting to database")

	attempt := 0
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++

		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
		defer cancel()

		db, err := c.open(attemptCtx, c.cfg, c.logger)
		if err != nil {
			classification := c.classifier.Classify(err)
			c.logger.Warn().Err(err).
				Int("attempt", attempt).
				Stringer("classification", classification).
				Msg("database connection attempt failed")

			if classification == NonRetryable {
				return err
			}
			return retry.RetryableError(err)
		}

		c.setDatabase(ctx, db)
		return nil
	})

	if err != nil {
		c.setState(StateDisconnected)
		c.logger.Error().Err(err).Int("attempts", attempt).Msg("database connection error")
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c.setState(StateConnected)
	c.logger.Info().Int("attempts", attempt).Msg("connected to database")

	return nil
}

// Run implements the background worker: it connects if needed and then
// pings the database every PingInterval. A failed ping marks the connection
// disconnected and pings again with backoff until it recovers. Run returns
// when ctx is done or connecting fails for a non-retryable reason.
func (c *Connection) Run(ctx context.Context) {
	if !c.Ready() {
		if err := c.Connect(ctx); err != nil {
			return
		}
	}

	t := time.NewTicker(c.cfg.PingInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := c.ping(ctx); err != nil {
				c.setState(StateDisconnected)
				c.logger.Error().Err(err).Msg("database connection lost")
				c.awaitRecovery(ctx)
			}
		}
	}
}

// Close releases the database handle if one is open.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	db := c.db
	c.db = nil
	c.mu.Unlock()

	c.setState(StateDisconnected)

	if db == nil {
		return nil
	}

	if err := db.Close(ctx); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}

	c.logger.Info().Msg("database connection closed")
	return nil
}

func (c *Connection) awaitRecovery(ctx context.Context) {
	err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		if err := c.ping(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return
	}

	c.setState(StateConnected)
	c.logger.Info().Msg("database connection restored")
}

func (c *Connection) ping(ctx context.Context) error {
	c.mu.RLock()
	db := c.db
	c.mu.RUnlock()

	if db == nil {
		return ErrNotConnected
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	return db.Ping(pingCtx)
}

func (c *Connection) backoff() retry.Backoff {
	b := retry.NewExponential(c.cfg.RetryBase)
	b = retry.WithJitterPercent(20, b)
	return retry.WithCappedDuration(c.cfg.RetryMax, b)
}

// setDatabase installs db and closes the handle it replaces, if any.
func (c *Connection) setDatabase(ctx context.Context, db Database) {
	c.mu.Lock()
	previous := c.db
	c.db = db
	c.mu.Unlock()

	if previous != nil && previous != db {
		_ = previous.Close(context.WithoutCancel(ctx))
	}
}

func (c *Connection) setState(state ConnectionState) {
	c.state.Store(int32(state))

	if c.observer != nil {
		c.observer.ObserveConnectionState(state)
	}
}
