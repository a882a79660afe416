// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the client side of every transport the echo server
// speaks: the UDP request/reply exchange ([DatagramClient]), the TCP echo
// connection ([StreamClient], [EchoConn]) and the HTTP admin API
// ([AdminClient], built on resty).
//
// Socket failures are reported as [ErrResolve], [ErrSocket], [ErrDial],
// [ErrSend] and [ErrReceive]; admin API failures are mapped from HTTP status
// codes by mapHTTPError. Callers match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-echo-sockets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DatagramRequester sends one datagram and waits for the reply.
type DatagramRequester interface {
	Request(ctx context.Context, payload []byte) ([]byte, error)
}

// Echoer is an open stream connection to the echo server.
type Echoer interface {
	// Echo writes msg and returns what the server sent back.
	Echo(ctx context.Context, msg []byte) ([]byte, error)
	// Send writes msg without waiting for the echo.
	Send(ctx context.Context, msg []byte) error
	// Receive reads up to n echoed bytes.
	Receive(ctx context.Context, n int) ([]byte, error)
	Close() error
}

// StreamDialer opens echo connections.
type StreamDialer interface {
	Dial(ctx context.Context) (Echoer, error)
}

// AdminAPI is the read-only admin surface of the server.
type AdminAPI interface {
	Version(ctx context.Context) (string, error)
	Stats(ctx context.Context) (models.Stats, error)
	Sessions(ctx context.Context, limit int) ([]models.Session, error)
}
