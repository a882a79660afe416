// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/handler"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/internal/workers"
)

const defaultShutdownTimeout = 5 * time.Second

type server struct {
	transports      []transport
	workers         *workers.Workers
	shutdownTimeout time.Duration

	done         chan struct{}
	shutdownOnce sync.Once
	shutdownErr  error

	logger *logger.Logger
}

// NewServer binds every transport enabled in cfg. Addresses are bound here,
// so a port conflict is reported before anything starts serving.
func NewServer(handlers *handler.Handlers, journal service.SessionJournal, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	ctx := context.Background()
	s := &server{
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		done:            make(chan struct{}),
		logger:          logger,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.UDPEnabled() {
		udp, err := newUDPServer(ctx, cfg.UDPAddress, journal, logger)
		if err != nil {
			return nil, s.abort(err)
		}
		s.transports = append(s.transports, udp)
	}

	if cfg.TCPEnabled() {
		tcp, err := newTCPServer(ctx, cfg.TCPAddress, cfg.BufferSize, journal, logger)
		if err != nil {
			return nil, s.abort(err)
		}
		s.transports = append(s.transports, tcp)
	}

	if cfg.AdminEnabled() && handlers != nil && handlers.HTTP != nil {
		admin, err := newHTTPServer(ctx, cfg.AdminAddress, handlers.HTTP.Init(), logger)
		if err != nil {
			return nil, s.abort(err)
		}
		s.transports = append(s.transports, admin)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// abort releases the transports bound so far.
func (s *server) abort(err error) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		_ = t.shutdown(ctx)
	}
	return err
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		s.logger.Info().
			Str("transport", t.name()).
			Str("address", t.addr().String()).
			Msg("launching server")
		g.Go(func() error {
			return t.serve(gctx)
		})
	}

	if s.workers != nil {
		g.Go(func() error {
			s.workers.Run(gctx)
			return nil
		})
	}

	// stops the transports on a signal, a failed transport or an explicit
	// Shutdown call
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.done:
		}
		cancel()
		return s.Shutdown()
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		close(s.done)

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range s.transports {
			if err := t.shutdown(ctx); err != nil {
				s.logger.Err(err).
					Str("func", "*server.Shutdown").
					Str("transport", t.name()).
					Msg("error shutting down transport")
				errs = append(errs, err)
			}
		}
		s.shutdownErr = errors.Join(errs...)
	})

	return s.shutdownErr
}

func (s *server) Addrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(s.transports))
	for _, t := range s.transports {
		addrs = append(addrs, t.addr())
	}
	return addrs
}
