// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/protocol"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/internal/utils"
	"github.com/MKhiriev/go-echo-sockets/models"
)

// tcpServer echoes every byte it reads back to the sender. Each accepted
// connection is served by its own goroutine.
type tcpServer struct {
	listener   net.Listener
	bufferSize int
	journal    service.SessionJournal

	closing atomic.Bool

	// mu guards conns and orders handler registration against shutdown.
	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup

	logger *logger.Logger
}

func newTCPServer(ctx context.Context, address string, bufferSize int, journal service.SessionJournal, logger *logger.Logger) (*tcpServer, error) {
	listener, err := listenStream(ctx, address)
	if err != nil {
		return nil, err
	}

	if bufferSize <= 0 {
		bufferSize = protocol.DefaultStreamBufferSize
	}

	return &tcpServer{
		listener:   listener,
		bufferSize: bufferSize,
		journal:    journal,
		conns:      make(map[net.Conn]struct{}),
		logger:     logger,
	}, nil
}

func (t *tcpServer) name() string { return "tcp" }

func (t *tcpServer) addr() net.Addr { return t.listener.Addr() }

func (t *tcpServer) serve(ctx context.Context) error {
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			if t.closing.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			t.logger.Err(err).Str("func", "*tcpServer.serve").Msg("error accepting connection")
			return fmt.Errorf("%w: %w", ErrAccept, err)
		}

		if !t.track(conn) {
			conn.Close()
			continue
		}

		go func() {
			defer t.untrack(conn)
			t.handle(ctx, conn)
		}()
	}
}

// track registers conn unless shutdown has started.
func (t *tcpServer) track(conn net.Conn) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closing.Load() {
		return false
	}
	t.conns[conn] = struct{}{}
	t.wg.Add(1)
	return true
}

func (t *tcpServer) untrack(conn net.Conn) {
	t.mu.Lock()
	delete(t.conns, conn)
	t.mu.Unlock()
	t.wg.Done()
}

func (t *tcpServer) handle(ctx context.Context, conn net.Conn) {
	remote := conn.RemoteAddr()
	session := t.journal.Open(ctx, models.TransportTCP, remote.String())

	log := t.logger.ForSession(session.ID, string(models.TransportTCP), remote.String())
	ctx = utils.WithSessionID(log.WithContext(ctx), session.ID)

	host, port := protocol.SplitAddr(remote)
	log.Info().Str("host", host).Str("port", port).Msg("Connected")

	reason := t.echo(ctx, conn, session)
	if reason != models.ClosePeerClosed && t.closing.Load() {
		reason = models.CloseServerShutdown
	}

	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Err(err).Str("func", "*tcpServer.handle").Msg("error closing connection")
	}

	if err := t.journal.Close(context.WithoutCancel(ctx), session, reason); err != nil {
		log.Err(err).Str("func", "*tcpServer.handle").Msg("error closing session")
	}
}

// echo copies reads back to the peer until the peer closes or an I/O error
// occurs, and reports why it stopped.
func (t *tcpServer) echo(ctx context.Context, conn net.Conn, session *models.Session) models.CloseReason {
	log := logger.FromContext(ctx)
	buf := make([]byte, t.bufferSize)

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			payload := buf[:n]
			log.Info().Int("bytes", n).Str("payload", protocol.Printable(payload)).Msg("Received")

			written, writeErr := conn.Write(payload)
			t.journal.Record(session, int64(n), int64(written))
			if writeErr != nil {
				log.Err(writeErr).Str("func", "*tcpServer.echo").Msg("error echoing")
				return models.CloseWriteError
			}
			log.Info().Int("bytes", written).Msg("Echoed")
		}

		switch {
		case errors.Is(err, io.EOF):
			log.Info().Msg(protocol.FarewellMessage)
			return models.ClosePeerClosed
		case err != nil:
			if !t.closing.Load() {
				log.Err(err).Str("func", "*tcpServer.echo").Msg("error reading")
			}
			return models.CloseReadError
		}
	}
}

// shutdown stops accepting, closes every live connection and waits for their
// handlers until ctx expires.
func (t *tcpServer) shutdown(ctx context.Context) error {
	t.mu.Lock()
	t.closing.Store(true)
	t.mu.Unlock()

	t.logger.Info().Msg("TCP server Shutdown")

	if err := t.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		t.logger.Err(err).Str("func", "*tcpServer.shutdown").Msg("error closing listener")
	}

	t.mu.Lock()
	for conn := range t.conns {
		conn.Close()
	}
	t.mu.Unlock()

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: tcp handlers still running", ErrShutdownTimeout)
	}
}
