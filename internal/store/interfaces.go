// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-echo-sockets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists finished sessions of the journal.
type SessionRepository interface {
	// Save stores a closed session.
	Save(ctx context.Context, session models.Session) error
	// List returns at most limit sessions, most recently ended first.
	List(ctx context.Context, limit int) ([]models.Session, error)
	// DeleteOlderThan removes sessions that ended before cutoff and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
