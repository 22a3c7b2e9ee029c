// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/fitness-api/internal/config"
	"github.com/MKhiriev/fitness-api/internal/handler"
	"github.com/MKhiriev/fitness-api/internal/logger"
	"github.com/MKhiriev/fitness-api/internal/workers"
)

type server struct {
	httpServer  *httpServer
	adminServer *httpServer
	workers     *workers.Workers
	logger      *logger.Logger
}

func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg *config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer("http", cfg.Server.Address(), handlers.HTTP.Init(), cfg.Server, logger)
	}
	if handlers.Admin != nil && cfg.Admin.Address != "" {
		servers.adminServer = newHTTPServer("admin", cfg.Admin.Address, handlers.Admin.Init(), cfg.Server, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	if bg == nil {
		bg = workers.NewWorkers()
	}
	servers.workers = bg
	servers.logger = logger

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, or until a listener
// fails, and then shuts everything down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish admin server first so probes stop answering
	if s.adminServer != nil {
		s.adminServer.Shutdown()
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var workersDone sync.WaitGroup
	workersDone.Go(func() {
		s.workers.Run(ctx)
	})

	listenErrs := make(chan error, 2)
	launch := func(srv *httpServer) {
		s.logger.Info().Str("server", srv.name).Msg("launching server")
		go func() {
			if err := srv.RunServer(); err != nil {
				listenErrs <- err
			}
		}()
	}

	launch(s.httpServer)
	if s.adminServer != nil {
		launch(s.adminServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case runErr = <-listenErrs:
		s.logger.Err(runErr).Msg("server failed")
	}

	// finish started servers, then stop the workers
	s.Shutdown()
	cancel()
	workersDone.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
