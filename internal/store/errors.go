// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidLimit is returned by List when limit is not positive.
	ErrInvalidLimit = errors.New("list limit must be positive")

	// ErrSessionNotClosed is returned by Save for a session without an end
	// time. Only finished sessions are journaled.
	ErrSessionNotClosed = errors.New("session is not closed")
)

// Low-level database operation errors. These are wrapped around the driver
// error when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan session rows")

	// ErrConnecting is returned when the database cannot be opened or pinged.
	ErrConnecting = errors.New("error connecting to database")
)
