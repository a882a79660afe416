// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/store"
	"github.com/MKhiriev/go-echo-sockets/internal/validators"
	"github.com/MKhiriev/go-echo-sockets/models"
)

// sessionJournal is the [SessionJournal] implementation. Totals are atomics so
// handlers never contend on them; the set of live sessions is guarded by mu.
type sessionJournal struct {
	repository store.SessionRepository
	ids        IDGenerator
	validator  validators.Validator
	now        func() time.Time
	startedAt  time.Time

	total    atomic.Int64
	bytesIn  atomic.Int64
	bytesOut atomic.Int64

	mu     sync.Mutex
	active map[string]*models.Session

	logger *logger.Logger
}

// NewSessionJournal returns a journal persisting closed sessions to repository.
func NewSessionJournal(repository store.SessionRepository, ids IDGenerator, logger *logger.Logger) SessionJournal {
	return newSessionJournal(repository, ids, time.Now, logger)
}

func newSessionJournal(repository store.SessionRepository, ids IDGenerator, now func() time.Time, logger *logger.Logger) *sessionJournal {
	return &sessionJournal{
		repository: repository,
		ids:        ids,
		validator:  validators.NewSessionValidator(),
		now:        now,
		startedAt:  now(),
		active:     make(map[string]*models.Session),
		logger:     logger,
	}
}

func (j *sessionJournal) Open(ctx context.Context, transport models.Transport, remote string) *models.Session {
	session := &models.Session{
		ID:         j.ids.Generate(),
		Transport:  transport,
		RemoteAddr: remote,
		StartedAt:  j.now(),
	}

	j.mu.Lock()
	j.active[session.ID] = session
	j.mu.Unlock()

	j.total.Add(1)

	return session
}

// Record is called only by the goroutine owning session.
func (j *sessionJournal) Record(session *models.Session, in, out int64) {
	if session == nil {
		return
	}

	session.BytesIn += in
	session.BytesOut += out

	j.bytesIn.Add(in)
	j.bytesOut.Add(out)
}

// Close is a no-op for a session that was already closed.
func (j *sessionJournal) Close(ctx context.Context, session *models.Session, reason models.CloseReason) error {
	if session == nil {
		return ErrNilSession
	}

	j.mu.Lock()
	if _, live := j.active[session.ID]; !live {
		j.mu.Unlock()
		return nil
	}
	delete(j.active, session.ID)
	j.mu.Unlock()

	session.EndedAt = j.now()
	session.CloseReason = reason

	if err := j.validator.Validate(ctx, session); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidSession, session.ID, err)
	}

	if err := j.repository.Save(ctx, *session); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionJournal.Close").
			Str("session_id", session.ID).
			Msg("error persisting session")
		return fmt.Errorf("error persisting session %s: %w", session.ID, err)
	}

	return nil
}

func (j *sessionJournal) Stats() models.Stats {
	j.mu.Lock()
	active := int64(len(j.active))
	j.mu.Unlock()

	return models.Stats{
		ActiveSessions: active,
		TotalSessions:  j.total.Load(),
		TotalBytesIn:   j.bytesIn.Load(),
		TotalBytesOut:  j.bytesOut.Load(),
		StartedAt:      j.startedAt,
	}
}

func (j *sessionJournal) List(ctx context.Context, limit int) ([]models.Session, error) {
	return j.repository.List(ctx, limit)
}

func (j *sessionJournal) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidPurgePeriod
	}

	cutoff := j.now().Add(-olderThan)
	deleted, err := j.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}

	return deleted, nil
}
