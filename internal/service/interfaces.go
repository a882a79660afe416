// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-echo-sockets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionJournal tracks live sessions and persists them once they close.
// It is safe for concurrent use by every connection handler.
type SessionJournal interface {
	// Open starts a live session for a peer.
	Open(ctx context.Context, transport models.Transport, remote string) *models.Session
	// Record adds transferred bytes to a live session and the journal totals.
	Record(session *models.Session, in, out int64)
	// Close ends a live session with reason and persists it.
	Close(ctx context.Context, session *models.Session, reason models.CloseReason) error

	// Stats returns a snapshot of the journal counters.
	Stats() models.Stats
	// List returns up to limit persisted sessions, newest first.
	List(ctx context.Context, limit int) ([]models.Session, error)
	// Purge removes persisted sessions that ended more than olderThan ago.
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces unique session ids.
type IDGenerator interface {
	Generate() string
}
