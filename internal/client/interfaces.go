// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Console runs an interactive session over an established echo connection.
type Console interface {
	Run(ctx context.Context, echoer adapter.Echoer) error
}
