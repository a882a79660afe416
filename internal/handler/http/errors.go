// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidLimitParameter is returned when the "limit" query parameter
	// is not a positive integer.
	ErrInvalidLimitParameter = errors.New("invalid `limit` query parameter")

	// ErrMethodNotAllowed is reported for a known path requested with a
	// method it does not serve.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
