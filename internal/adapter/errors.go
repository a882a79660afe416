// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"os"
)

// Socket errors.
var (
	ErrResolve          = errors.New("cannot resolve server address")
	ErrSocket           = errors.New("cannot open local socket")
	ErrDial             = errors.New("cannot connect to server")
	ErrSend             = errors.New("send failed")
	ErrReceive          = errors.New("receive failed")
	ErrConnectionClosed = errors.New("connection closed by server")

	// ErrDeadline is what socket operations fail with once their deadline
	// passes, the receive timeout included.
	ErrDeadline = os.ErrDeadlineExceeded
)

// Admin API errors, mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidAdminURL     = errors.New("invalid admin url")
)
