// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/handler"
	httphandler "github.com/MKhiriev/fitness-api/internal/handler/http"
	"github.com/MKhiriev/fitness-api/internal/health"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/ratelimit"
	"github.com/MKhiriev/fitness-api/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stoppableWorker records whether it observed cancellation.
type stoppableWorker struct {
	started chan struct{}
	stopped atomic.Bool
}

func (w *stoppableWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
	w.stopped.Store(true)
}

func newTestHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(cfg, handler.Dependencies{
		HTTP: httphandler.Dependencies{
			Limiter: ratelimit.NewLimiter(ratelimit.NewMemoryStore(), time.Minute, 10, logger.Nop()),
		},
		Probes: health.NewHealthChecker("test"),
	}, logger.Nop())
	require.NoError(t, err)

	return handlers
}

func testConfig() *config.StructuredConfig {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestNewServer_PublicOnly(t *testing.T) {
	cfg := testConfig()

	srv, err := NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NotNil(t, s.httpServer)
	assert.Nil(t, s.adminServer)
	assert.NotNil(t, s.workers)
	assert.Equal(t, cfg.Server.ReadTimeout, s.httpServer.server.ReadTimeout)
	assert.Equal(t, cfg.Server.WriteTimeout, s.httpServer.server.WriteTimeout)
	assert.Equal(t, cfg.Server.IdleTimeout, s.httpServer.server.IdleTimeout)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
}

func TestNewServer_WithAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.Address = "127.0.0.1:0"

	srv, err := NewServer(newTestHandlers(t, cfg), nil, cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NotNil(t, s.adminServer)
	assert.Equal(t, "admin", s.adminServer.name)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, testConfig(), logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	worker := &stoppableWorker{started: make(chan struct{})}

	srv, err := NewServer(newTestHandlers(t, cfg), workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	select {
	case <-worker.started:
	case <-time.After(time.Second):
		t.Fatal("worker was not started")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.True(t, worker.stopped.Load())
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	worker := &stoppableWorker{started: make(chan struct{})}

	srv, err := NewServer(newTestHandlers(t, cfg), workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)
	s.httpServer.server.Addr = busy.Addr().String()

	done := make(chan error, 1)
	go func() {
		done <- s.run(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "http server listen")
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return on listen error")
	}
	assert.True(t, worker.stopped.Load())
}

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := testConfig()
	srv := newHTTPServer("http", ln.Addr().String(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), cfg.Server, logger.Nop())

	done := make(chan error, 1)
	go func() {
		done <- srv.serve(ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop(), workers: workers.NewWorkers()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}
