// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data shared by the servers, the journal and the
// admin API.
package models

import "time"

// Transport identifies the socket type a session was carried over.
type Transport string

const (
	// TransportTCP marks a stream session: one accepted connection.
	TransportTCP Transport = "tcp"

	// TransportUDP marks a datagram session: one request/reply exchange.
	TransportUDP Transport = "udp"
)

// CloseReason explains why a session ended.
type CloseReason string

const (
	// ClosePeerClosed means the TCP peer closed its side (read returned EOF).
	ClosePeerClosed CloseReason = "peer_closed"

	// CloseReadError means reading from the peer failed.
	CloseReadError CloseReason = "read_error"

	// CloseWriteError means writing the echo or the reply failed.
	CloseWriteError CloseReason = "write_error"

	// CloseServerShutdown means the server closed the connection while
	// shutting down.
	CloseServerShutdown CloseReason = "server_shutdown"

	// CloseReplied means a UDP request was answered.
	CloseReplied CloseReason = "replied"
)

// Session is a single journal entry. For TCP it spans accept to close; for
// UDP it covers one request datagram and its reply.
type Session struct {
	// ID is a UUIDv7, so lexical order follows creation order.
	ID string `json:"id"`

	Transport  Transport `json:"transport"`
	RemoteAddr string    `json:"remote_addr"`

	StartedAt time.Time `json:"started_at"`
	// EndedAt is zero while the session is live.
	EndedAt time.Time `json:"ended_at,omitempty"`

	// BytesIn counts bytes received from the peer.
	BytesIn int64 `json:"bytes_in"`
	// BytesOut counts bytes sent back to the peer.
	BytesOut int64 `json:"bytes_out"`

	CloseReason CloseReason `json:"close_reason,omitempty"`
}

// Duration reports how long the session lasted, or has lasted so far.
func (s Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Closed reports whether the session has ended.
func (s Session) Closed() bool {
	return !s.EndedAt.IsZero()
}
