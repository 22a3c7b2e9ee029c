// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/logger"
)

var errPingFailed = errors.New("server selection timeout")

type fakeDatabase struct {
	pingFails atomic.Bool
	closed    atomic.Bool
}

func (f *fakeDatabase) Name() string { return "fake" }

func (f *fakeDatabase) Ping(context.Context) error {
	if f.pingFails.Load() {
		return errPingFailed
	}
	return nil
}

func (f *fakeDatabase) Close(context.Context) error {
	f.closed.Store(true)
	return nil
}

// scriptedOpener returns the errors in order and then db.
type scriptedOpener struct {
	mu       sync.Mutex
	errs     []error
	db       Database
	attempts int
}

func (o *scriptedOpener) open(context.Context, config.DB, *logger.Logger) (Database, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.attempts++
	if len(o.errs) > 0 {
		err := o.errs[0]
		o.errs = o.errs[1:]
		return nil, err
	}
	return o.db, nil
}

func (o *scriptedOpener) Attempts() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.attempts
}

type recordingObserver struct {
	mu     sync.Mutex
	states []ConnectionState
}

func (r *recordingObserver) ObserveConnectionState(state ConnectionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recordingObserver) States() []ConnectionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ConnectionState(nil), r.states...)
}

func testDBConfig() config.DB {
	return config.DB{
		URI:            "mongodb://localhost:27017/fitness",
		MaxPoolSize:    4,
		ConnectTimeout: 100 * time.Millisecond,
		StartupMode:    config.StartupModeDegrade,
		RetryBase:      time.Millisecond,
		RetryMax:       5 * time.Millisecond,
		StartupTimeout: time.Second,
		PingInterval:   10 * time.Millisecond,
	}
}

// scriptedDB is an opener that always returns db.
func scriptedDB(db Database) Opener {
	return func(context.Context, config.DB, *logger.Logger) (Database, error) {
		return db, nil
	}
}
