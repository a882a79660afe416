// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"net"
	"time"
)

const (
	// DefaultHost is the host clients connect to when none is configured.
	DefaultHost = "localhost"

	// DefaultPort is the port shared by the UDP and TCP servers.
	DefaultPort = "1337"

	// RequestPayload is the literal datagram sent by the UDP client.
	RequestPayload = "request!"

	// ReplyPayload is the datagram the UDP server answers every request with.
	ReplyPayload = "Hello world!"

	// FarewellMessage is logged when a TCP peer closes its side of the
	// connection.
	FarewellMessage = "Bye bye!"

	// MaxDatagramSize is the receive buffer used by both UDP peers.
	MaxDatagramSize = 1024

	// DefaultStreamBufferSize is the per-connection read chunk for TCP.
	DefaultStreamBufferSize = 1024

	// DefaultReceiveTimeout bounds how long the UDP client waits for a reply.
	DefaultReceiveTimeout = 10 * time.Second
)

// TrimTerminator drops a single trailing NUL byte. C peers send strlen+1
// bytes, so their payloads arrive NUL-terminated.
func TrimTerminator(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == 0 {
		return b[:n-1]
	}
	return b
}

// Printable returns the payload as a string suitable for log output, cut at
// the first NUL the way a C string would be printed.
func Printable(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// JoinHostPort builds an address, falling back to DefaultHost and DefaultPort
// for empty parts.
func JoinHostPort(host, port string) string {
	if host == "" {
		host = DefaultHost
	}
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(host, port)
}

// SplitAddr returns the numeric host and port of addr. The second value is
// empty when addr carries no port.
func SplitAddr(addr net.Addr) (string, string) {
	if addr == nil {
		return "", ""
	}
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String(), ""
	}
	return host, port
}
