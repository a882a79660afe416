// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"id",
	"transport",
	"remote_addr",
	"started_at",
	"ended_at",
	"bytes_in",
	"bytes_out",
	"close_reason",
}

// sessionRepository is the SQL implementation of [SessionRepository]. It
// works with both PostgreSQL and SQLite; the dialect differences are the
// placeholder format and the error classifier carried by [DB].
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts a closed session. Times are stored in UTC.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if !session.Closed() {
		return ErrSessionNotClosed
	}

	query, args, err := r.db.builder().
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(
			session.ID,
			string(session.Transport),
			session.RemoteAddr,
			session.StartedAt.UTC(),
			session.EndedAt.UTC(),
			session.BytesIn,
			session.BytesOut,
			string(session.CloseReason),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = withRetry(ctx, r.db.errorClassificator, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Str("session_id", session.ID).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// List returns the newest sessions first, ordered by end time and then id.
func (r *sessionRepository) List(ctx context.Context, limit int) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := r.db.builder().
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("ended_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.List").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sessions []models.Session
	err = withRetry(ctx, r.db.errorClassificator, func() error {
		var queryErr error
		sessions, queryErr = r.query(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.List").Msg("error listing sessions")
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) query(ctx context.Context, query string, args ...any) ([]models.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var (
			s                      models.Session
			transport, closeReason string
		)
		if err := rows.Scan(&s.ID, &transport, &s.RemoteAddr, &s.StartedAt, &s.EndedAt, &s.BytesIn, &s.BytesOut, &closeReason); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.Transport = models.Transport(transport)
		s.CloseReason = models.CloseReason(closeReason)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// DeleteOlderThan removes sessions whose end time is before cutoff.
func (r *sessionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(sessionsTable).
		Where(sq.Lt{"ended_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteOlderThan").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = withRetry(ctx, r.db.errorClassificator, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		deleted, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteOlderThan").Msg("error deleting sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
