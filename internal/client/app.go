// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
)

// Adapters are the transports the client talks to the server through.
type Adapters struct {
	Datagram adapter.DatagramRequester
	Stream   adapter.StreamDialer
	Admin    adapter.AdminAPI
}

type App struct {
	mode     string
	adapters Adapters
	console  Console

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(cfg config.Client, adapters Adapters, console Console, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		mode:     cfg.Mode,
		adapters: adapters,
		console:  console,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("mode", a.mode).Msg("client started")

	switch a.mode {
	case config.ModeUDP:
		return a.runDatagram(ctx)
	case config.ModeTCP:
		return a.runStream(ctx)
	case config.ModeConsole:
		return a.runConsole(ctx)
	case config.ModeStats:
		return a.runStats(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, a.mode)
	}
}
