// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySessionID     = errors.New("session id is required")
	ErrInvalidTransport   = errors.New("invalid transport")
	ErrEmptyRemoteAddr    = errors.New("remote address is required")
	ErrInvalidTimes       = errors.New("session ends before it starts")
	ErrNegativeByteCount  = errors.New("byte counters cannot be negative")
	ErrInvalidCloseReason = errors.New("invalid close reason")
)
