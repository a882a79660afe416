// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates invalid server settings (for example,
	// both transports disabled or a malformed listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid client settings (for example,
	// an unknown mode or a non-positive receive timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a retention period shorter than zero).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port number must be between 0 and 65535")
	errHostNotIP     = errors.New("incorrect IP-address provided")
)
