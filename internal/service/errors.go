// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNilSession         = errors.New("session is nil")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidPurgePeriod = errors.New("purge period must be positive")
)
