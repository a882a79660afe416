// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/migrations"
)

// Driver names registered with database/sql. They double as goose dialects.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB bundles a connection pool with what the repositories need to talk to
// it: the squirrel placeholder style of the driver and its error classifier.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded journal migrations for the driver's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a statement builder using the driver's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
