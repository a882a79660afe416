// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUnknownMode is returned by Run for a mode it does not implement.
	ErrUnknownMode = errors.New("unknown client mode")

	// ErrReadInput is returned when standard input cannot be read.
	ErrReadInput = errors.New("error reading input")
)
