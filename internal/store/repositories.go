// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
)

// Repositories groups the storage dependencies of the server.
type Repositories struct {
	SessionRepository SessionRepository

	// db is nil for the in-memory backend.
	db *DB
}

// NewRepositories picks the journal backend from cfg.DB.DSN:
//   - empty: in-memory ring of [DefaultMemoryCapacity] sessions;
//   - "postgres://" or "postgresql://": PostgreSQL through pgx;
//   - anything else: a SQLite file.
//
// SQL backends are migrated before use.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	dsn := cfg.DB.DSN
	if dsn == "" {
		log.Info().Str("backend", "memory").Msg("session journal is kept in memory")
		return &Repositories{
			SessionRepository: NewMemorySessionRepository(DefaultMemoryCapacity),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(dsn) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error migrating journal database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating journal database: %w", err)
	}

	log.Info().Str("backend", db.driver).Msg("session journal is kept in database")
	return &Repositories{
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
