// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/service"
	"github.com/MKhiriev/go-echo-sockets/models"
)

var (
	errWriteBroken = errors.New("broken pipe")
	errReadBroken  = errors.New("connection reset by peer")
)

var testPeer = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 40000}

// faultyConn replays reads and then fails with readErr. Writes fail with
// writeErr when it is set.
type faultyConn struct {
	net.Conn
	reads    [][]byte
	readErr  error
	writeErr error
}

func (c *faultyConn) Read(b []byte) (int, error) {
	if len(c.reads) > 0 {
		n := copy(b, c.reads[0])
		c.reads = c.reads[1:]
		return n, nil
	}
	return 0, c.readErr
}

func (c *faultyConn) Write(b []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return len(b), nil
}

func (c *faultyConn) Close() error { return nil }

func (c *faultyConn) RemoteAddr() net.Addr { return testPeer }

type faultyListener struct {
	net.Listener
	err error
}

func (l *faultyListener) Accept() (net.Conn, error) { return nil, l.err }

func (l *faultyListener) Close() error { return nil }

func (l *faultyListener) Addr() net.Addr { return testPeer }

// faultyPacketConn hands out datagrams and then fails with readErr.
type faultyPacketConn struct {
	net.PacketConn
	datagrams [][]byte
	readErr   error
	writeErr  error
}

func (c *faultyPacketConn) ReadFrom(b []byte) (int, net.Addr, error) {
	if len(c.datagrams) > 0 {
		n := copy(b, c.datagrams[0])
		c.datagrams = c.datagrams[1:]
		return n, &net.UDPAddr{IP: testPeer.IP, Port: testPeer.Port}, nil
	}
	return 0, nil, c.readErr
}

func (c *faultyPacketConn) WriteTo(b []byte, _ net.Addr) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return len(b), nil
}

func (c *faultyPacketConn) Close() error { return nil }

func (c *faultyPacketConn) LocalAddr() net.Addr {
	return &net.UDPAddr{IP: testPeer.IP, Port: 1337}
}

func newTestTCPServer(journal service.SessionJournal, listener net.Listener) *tcpServer {
	return &tcpServer{
		listener:   listener,
		bufferSize: 16,
		journal:    journal,
		conns:      make(map[net.Conn]struct{}),
		logger:     logger.Nop(),
	}
}

func onlySession(t *testing.T, journal service.SessionJournal) models.Session {
	t.Helper()
	list, err := journal.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0]
}

func TestTCP_ResetByPeerClosesWithReadError(t *testing.T) {
	env := startServer(t, loopbackConfig(), nil)

	conn, err := net.Dial("tcp", env.addrOf(t, "tcp"))
	require.NoError(t, err)

	_, err = conn.Write([]byte("x"))
	require.NoError(t, err)
	buf := make([]byte, 1)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, err = conn.Read(buf)
	require.NoError(t, err)

	require.NoError(t, conn.(*net.TCPConn).SetLinger(0))
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return len(env.sessions(t)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	s := env.sessions(t)[0]
	assert.Equal(t, models.CloseReadError, s.CloseReason)
	assert.Equal(t, int64(1), s.BytesIn)
	assert.Equal(t, int64(1), s.BytesOut)
}

func TestTCP_HandleCloseReasons(t *testing.T) {
	tests := []struct {
		name     string
		conn     *faultyConn
		reason   models.CloseReason
		bytesIn  int64
		bytesOut int64
	}{
		{
			name:     "write fails",
			conn:     &faultyConn{reads: [][]byte{[]byte("abc")}, writeErr: errWriteBroken},
			reason:   models.CloseWriteError,
			bytesIn:  3,
			bytesOut: 0,
		},
		{
			name:     "read fails",
			conn:     &faultyConn{reads: [][]byte{[]byte("abc")}, readErr: errReadBroken},
			reason:   models.CloseReadError,
			bytesIn:  3,
			bytesOut: 3,
		},
		{
			name:   "read fails during shutdown",
			conn:   &faultyConn{readErr: net.ErrClosed},
			reason: models.CloseServerShutdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := newJournal()
			srv := newTestTCPServer(journal, nil)
			if tt.reason == models.CloseServerShutdown {
				srv.closing.Store(true)
			}

			srv.handle(context.Background(), tt.conn)

			s := onlySession(t, journal)
			assert.Equal(t, models.TransportTCP, s.Transport)
			assert.Equal(t, tt.reason, s.CloseReason)
			assert.Equal(t, tt.bytesIn, s.BytesIn)
			assert.Equal(t, tt.bytesOut, s.BytesOut)
			assert.Equal(t, testPeer.String(), s.RemoteAddr)
		})
	}
}

func TestTCP_ServeReturnsAcceptError(t *testing.T) {
	acceptErr := errors.New("too many open files")
	srv := newTestTCPServer(newJournal(), &faultyListener{err: acceptErr})

	err := srv.serve(context.Background())

	require.ErrorIs(t, err, ErrAccept)
	assert.ErrorIs(t, err, acceptErr)
}

func TestTCP_ServeStopsQuietlyWhenClosing(t *testing.T) {
	srv := newTestTCPServer(newJournal(), &faultyListener{err: errors.New("use of closed socket")})
	srv.closing.Store(true)

	assert.NoError(t, srv.serve(context.Background()))
}

func TestUDP_SendErrorIsJournaled(t *testing.T) {
	journal := newJournal()
	srv := &udpServer{
		conn: &faultyPacketConn{
			datagrams: [][]byte{[]byte("request!")},
			writeErr:  errWriteBroken,
		},
		journal: journal,
		logger:  logger.Nop(),
	}

	err := srv.serve(context.Background())

	require.ErrorIs(t, err, ErrDatagramSend)
	assert.ErrorIs(t, err, errWriteBroken)

	s := onlySession(t, journal)
	assert.Equal(t, models.TransportUDP, s.Transport)
	assert.Equal(t, models.CloseWriteError, s.CloseReason)
	assert.Equal(t, int64(len("request!")), s.BytesIn)
	assert.Equal(t, int64(0), s.BytesOut)
}

func TestUDP_ServeReceiveErrors(t *testing.T) {
	receiveErr := errors.New("message too long")

	tests := []struct {
		name    string
		readErr error
		closing bool
		wantErr error
	}{
		{name: "receive fails", readErr: receiveErr, wantErr: ErrDatagramReceive},
		{name: "socket closed", readErr: net.ErrClosed},
		{name: "shutdown in progress", readErr: receiveErr, closing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := newJournal()
			srv := &udpServer{
				conn:    &faultyPacketConn{readErr: tt.readErr},
				journal: journal,
				logger:  logger.Nop(),
			}
			srv.closing.Store(tt.closing)

			err := srv.serve(context.Background())

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, tt.readErr)
			}
			assert.Zero(t, journal.Stats().TotalSessions)
		})
	}
}
