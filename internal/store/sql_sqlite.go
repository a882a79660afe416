// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
)

// NewConnectSQLite opens the SQLite journal file named by cfg.DSN, creating
// it when it does not exist yet. A "sqlite://" prefix is stripped; "file:"
// URIs are passed to the driver untouched.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimPrefix(cfg.DSN, "sqlite://")

	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	conn, err := sql.Open(driverSQLite, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// a single writer avoids most SQLITE_BUSY contention between handlers
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		driver:             driverSQLite,
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
// SQLITE_BUSY and SQLITE_LOCKED are retryable; everything else is not.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}
