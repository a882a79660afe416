// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations are registered, so the first goose query fails
	err = Migrate(db, "sqlite3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(embedMigrations, files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "-- +goose Up"))
	assert.True(t, strings.Contains(string(body), "-- +goose Down"))
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS sessions")
}
