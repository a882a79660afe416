// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
)

// DatagramClient performs the UDP request/reply exchange.
type DatagramClient struct {
	address        string
	receiveTimeout time.Duration

	logger *logger.Logger
}

// NewDatagramClient returns a client for the server at cfg.Address(). A
// non-positive cfg.ReceiveTimeout uses [protocol.DefaultReceiveTimeout].
func NewDatagramClient(cfg config.Client, logger *logger.Logger) *DatagramClient {
	timeout := cfg.ReceiveTimeout
	if timeout <= 0 {
		timeout = protocol.DefaultReceiveTimeout
	}

	return &DatagramClient{
		address:        cfg.Address(),
		receiveTimeout: timeout,
		logger:         logger,
	}
}

// Request sends payload from an ephemeral socket of the server address family
// and waits up to the receive timeout for one reply datagram. The socket is
// connected to the server, so datagrams from other sources are dropped. The
// reply is returned with a trailing NUL trimmed.
func (c *DatagramClient) Request(ctx context.Context, payload []byte) ([]byte, error) {
	raddr, err := net.ResolveUDPAddr("udp", c.address)
	if err != nil {
		c.logger.Err(err).Str("func", "*DatagramClient.Request").Str("address", c.address).Msg("error resolving server address")
		return nil, fmt.Errorf("%w %s: %w", ErrResolve, c.address, err)
	}

	network := "udp6"
	if raddr.IP == nil || raddr.IP.To4() != nil {
		network = "udp4"
	}

	conn, err := net.DialUDP(network, nil, raddr)
	if err != nil {
		c.logger.Err(err).Str("func", "*DatagramClient.Request").Msg("error opening local socket")
		return nil, fmt.Errorf("%w: %w", ErrSocket, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.receiveTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err = conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSocket, err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err = conn.Write(payload); err != nil {
		c.logger.Err(err).Str("func", "*DatagramClient.Request").Msg("error sending request")
		return nil, fmt.Errorf("%w: %w", ErrSend, contextOr(ctx, err))
	}
	c.logger.Debug().Str("payload", protocol.Printable(payload)).Str("to", raddr.String()).Msg("Sent")

	buf := make([]byte, protocol.MaxDatagramSize)
	n, err := conn.Read(buf)
	if err != nil {
		c.logger.Err(err).Str("func", "*DatagramClient.Request").Msg("error receiving reply")
		return nil, fmt.Errorf("%w: %w", ErrReceive, contextOr(ctx, err))
	}

	reply := protocol.TrimTerminator(buf[:n])
	c.logger.Debug().Str("payload", protocol.Printable(reply)).Str("from", raddr.String()).Msg("Received")

	return reply, nil
}

// contextOr reports a deadline error caused by ctx as the context error.
func contextOr(ctx context.Context, err error) error {
	if !errors.Is(err, ErrDeadline) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
		return context.DeadlineExceeded
	}
	return err
}
