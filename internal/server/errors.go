// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrBind is returned when a transport cannot bind its address.
	ErrBind = errors.New("error binding address")

	// ErrAccept is returned by the TCP listener when Accept fails for a
	// reason other than shutdown.
	ErrAccept = errors.New("error accepting connection")

	// ErrDatagramReceive is returned by the UDP replier when reading a
	// request fails for a reason other than shutdown.
	ErrDatagramReceive = errors.New("error receiving datagram")

	// ErrDatagramSend is returned by the UDP replier when the reply cannot
	// be sent.
	ErrDatagramSend = errors.New("error sending datagram")

	// ErrAdminServe is returned when the admin HTTP server stops unexpectedly.
	ErrAdminServe = errors.New("admin server error")

	// ErrShutdownTimeout is returned by Shutdown when connection handlers
	// did not finish within the configured timeout.
	ErrShutdownTimeout = errors.New("shutdown timed out")
)
