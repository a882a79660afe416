// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
)

// Server is the lifecycle contract of the socket server process.
type Server interface {
	// RunServer serves every enabled transport until ctx is cancelled, a
	// stop signal arrives or a transport fails. It returns the first fatal
	// transport error.
	RunServer(ctx context.Context) error

	// Shutdown stops all transports. It is safe to call more than once.
	Shutdown() error

	// Addrs returns the bound address of every transport.
	Addrs() []net.Addr
}

// transport is a single listener run by the server.
type transport interface {
	name() string
	addr() net.Addr
	serve(ctx context.Context) error
	shutdown(ctx context.Context) error
}
