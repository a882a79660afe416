// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// httpServer serves the admin API.
type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(ctx context.Context, address string, router http.Handler, logger *logger.Logger) (*httpServer, error) {
	listener, err := listenStream(ctx, address)
	if err != nil {
		return nil, err
	}

	return &httpServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) name() string { return "admin" }

func (h *httpServer) addr() net.Addr { return h.listener.Addr() }

func (h *httpServer) serve(context.Context) error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("func", "*httpServer.serve").Msg("admin server Serve")
		return fmt.Errorf("%w: %w", ErrAdminServe, err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")

	if err := h.server.Shutdown(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrShutdownTimeout, err)
		}
		return fmt.Errorf("error shutting down admin server: %w", err)
	}
	return nil
}
