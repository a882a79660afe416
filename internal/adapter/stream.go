// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
)

// StreamClient opens TCP connections to the echo server.
type StreamClient struct {
	address     string
	dialTimeout time.Duration
	bufferSize  int

	logger *logger.Logger
}

// NewStreamClient returns a dialer for cfg.Address(). cfg.RequestTimeout
// bounds the connect.
func NewStreamClient(cfg config.Client, logger *logger.Logger) *StreamClient {
	return &StreamClient{
		address:     cfg.Address(),
		dialTimeout: cfg.RequestTimeout,
		bufferSize:  protocol.DefaultStreamBufferSize,
		logger:      logger,
	}
}

// Dial connects to the server. The returned [Echoer] is an [*EchoConn].
func (c *StreamClient) Dial(ctx context.Context) (Echoer, error) {
	d := net.Dialer{Timeout: c.dialTimeout}

	conn, err := d.DialContext(ctx, "tcp", c.address)
	if err != nil {
		c.logger.Err(err).Str("func", "*StreamClient.Dial").Str("address", c.address).Msg("error connecting to server")
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return nil, fmt.Errorf("%w %s: %w", ErrResolve, c.address, err)
		}
		return nil, fmt.Errorf("%w %s: %w", ErrDial, c.address, err)
	}

	c.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Connection established")
	return &EchoConn{
		conn:   conn,
		buf:    make([]byte, c.bufferSize),
		logger: c.logger,
	}, nil
}

// EchoConn is one open echo connection. It is not safe for concurrent use.
type EchoConn struct {
	conn net.Conn
	buf  []byte

	logger *logger.Logger
}

// Echo sends msg and reads until as many bytes have come back or the server
// closes the connection. An empty msg is not sent.
func (e *EchoConn) Echo(ctx context.Context, msg []byte) ([]byte, error) {
	if err := e.Send(ctx, msg); err != nil {
		return nil, err
	}
	return e.Receive(ctx, len(msg))
}

// Send writes msg to the server. An empty msg is not sent.
func (e *EchoConn) Send(ctx context.Context, msg []byte) error {
	if len(msg) == 0 {
		return nil
	}

	stop := context.AfterFunc(ctx, func() {
		_ = e.conn.SetWriteDeadline(time.Now())
	})
	defer stop()

	if _, err := e.conn.Write(msg); err != nil {
		e.logger.Err(err).Str("func", "*EchoConn.Send").Msg("error sending message")
		return fmt.Errorf("%w: %w", ErrSend, contextOr(ctx, err))
	}

	return nil
}

// Receive reads until n bytes have arrived or the server closes the
// connection. Stream sockets keep no message boundaries, so one write may be
// echoed in several reads.
func (e *EchoConn) Receive(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	stop := context.AfterFunc(ctx, func() {
		_ = e.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	reply := make([]byte, 0, n)
	for len(reply) < n {
		read, err := e.conn.Read(e.buf)
		reply = append(reply, e.buf[:read]...)
		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if len(reply) > 0 {
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrConnectionClosed, err)
		}

		e.logger.Err(err).Str("func", "*EchoConn.Receive").Msg("error reading echo")
		return nil, fmt.Errorf("%w: %w", ErrReceive, contextOr(ctx, err))
	}

	return reply, nil
}

// RemoteAddr returns the server address of the connection.
func (e *EchoConn) RemoteAddr() net.Addr {
	return e.conn.RemoteAddr()
}

func (e *EchoConn) Close() error {
	return e.conn.Close()
}
