// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestConnection_InitialState(t *testing.T) {
	c := NewConnection(testDBConfig(), logger.Nop())

	if c.State() != StateConnecting {
		t.Fatalf("expected connecting, got %s", c.State())
	}
	if c.Ready() {
		t.Fatal("expected not ready")
	}
	if _, err := c.Database(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestConnection_Connect_Success(t *testing.T) {
	db := &fakeDatabase{}
	opener := &scriptedOpener{db: db}
	observer := &recordingObserver{}

	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open), WithStateObserver(observer))

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.State() != StateConnected {
		t.Fatalf("expected connected, got %s", c.State())
	}
	got, err := c.Database()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != db {
		t.Fatal("expected the opened database")
	}

	states := observer.States()
	if states[len(states)-1] != StateConnected {
		t.Errorf("expected last observed state connected, got %v", states)
	}
}

func TestConnection_Connect_RetriesTransientErrors(t *testing.T) {
	opener := &scriptedOpener{
		errs: []error{errors.New("connection refused"), errors.New("i/o timeout")},
		db:   &fakeDatabase{},
	}

	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opener.Attempts() != 3 {
		t.Errorf("expected 3 attempts, got %d", opener.Attempts())
	}
	if !c.Ready() {
		t.Error("expected ready")
	}
}

func TestConnection_Connect_StopsOnNonRetryable(t *testing.T) {
	authErr := &pgconn.PgError{Code: pgerrcode.InvalidPassword}
	opener := &scriptedOpener{
		errs: []error{authErr, errors.New("unreachable")},
		db:   &fakeDatabase{},
	}

	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	err := c.Connect(context.Background())
	if !errors.Is(err, ErrConnectionFailed) {
		t.Fatalf("expected ErrConnectionFailed, got %v", err)
	}
	if !errors.As(err, new(*pgconn.PgError)) {
		t.Errorf("expected the pg error to be wrapped, got %v", err)
	}
	if opener.Attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", opener.Attempts())
	}
	if c.State() != StateDisconnected {
		t.Errorf("expected disconnected, got %s", c.State())
	}
}

func TestConnection_Connect_GivesUpWhenContextEnds(t *testing.T) {
	errs := make([]error, 1000)
	for i := range errs {
		errs[i] = errors.New("connection refused")
	}
	opener := &scriptedOpener{errs: errs, db: &fakeDatabase{}}

	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := c.Connect(ctx)
	if !errors.Is(err, ErrConnectionFailed) {
		t.Fatalf("expected ErrConnectionFailed, got %v", err)
	}
	if c.State() != StateDisconnected {
		t.Errorf("expected disconnected, got %s", c.State())
	}
}

func TestConnection_Connect_NoURI(t *testing.T) {
	cfg := testDBConfig()
	cfg.URI = ""

	c := NewConnection(cfg, logger.Nop())

	err := c.Connect(context.Background())
	if !errors.Is(err, ErrNoDatabaseURI) {
		t.Fatalf("expected ErrNoDatabaseURI, got %v", err)
	}
	if !errors.Is(err, ErrConnectionFailed) {
		t.Error("expected ErrConnectionFailed in the chain")
	}
}

func TestConnection_Run_MonitorsAndRecovers(t *testing.T) {
	db := &fakeDatabase{}
	opener := &scriptedOpener{db: db}

	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	waitForState(t, c, StateConnected)

	db.pingFails.Store(true)
	waitForState(t, c, StateDisconnected)

	db.pingFails.Store(false)
	waitForState(t, c, StateConnected)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if opener.Attempts() != 1 {
		t.Errorf("expected the handle to be reused, got %d opens", opener.Attempts())
	}
}

func TestConnection_Run_ReturnsOnNonRetryable(t *testing.T) {
	cfg := testDBConfig()
	cfg.URI = "mysql://localhost/fitness"

	c := NewConnection(cfg, logger.Nop())

	done := make(chan struct{})
	go func() {
		c.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run must return for an unsupported scheme")
	}
	if c.State() != StateDisconnected {
		t.Errorf("expected disconnected, got %s", c.State())
	}
}

func TestConnection_Close(t *testing.T) {
	db := &fakeDatabase{}
	opener := &scriptedOpener{db: db}
	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !db.closed.Load() {
		t.Error("expected database to be closed")
	}
	if c.State() != StateDisconnected {
		t.Errorf("expected disconnected, got %s", c.State())
	}

	// closing twice is a no-op
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
}

func TestConnection_ReconnectClosesPreviousHandle(t *testing.T) {
	first := &fakeDatabase{}
	opener := &scriptedOpener{db: first}
	c := NewConnection(testDBConfig(), logger.Nop(), WithOpener(opener.open))

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &fakeDatabase{}
	opener.mu.Lock()
	opener.db = second
	opener.mu.Unlock()

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.closed.Load() {
		t.Error("expected the replaced handle to be closed")
	}
	if second.closed.Load() {
		t.Error("expected the new handle to stay open")
	}
}

func TestConnectionState_String(t *testing.T) {
	tests := map[ConnectionState]string{
		StateConnecting:     "connecting",
		StateConnected:      "connected",
		StateDisconnected:   "disconnected",
		ConnectionState(42): "unknown",
	}

	for state, expected := range tests {
		if state.String() != expected {
			t.Errorf("expected %q, got %q", expected, state.String())
		}
	}
}

func waitForState(t *testing.T, c *Connection, state ConnectionState) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == state {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for state %s, current %s", state, c.State())
}
