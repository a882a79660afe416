// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-echo-sockets/internal/utils"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"wrapped retryable", fmt.Errorf("save: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

type countingClassifier struct{ class ErrorClassification }

func (c countingClassifier) Classify(error) ErrorClassification { return c.class }

func TestWithRetry_StopsOnSuccess(t *testing.T) {
	shortRetries(t)
	calls := 0

	err := withRetry(context.Background(), countingClassifier{Retryable}, func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_NonRetryable(t *testing.T) {
	shortRetries(t)
	calls := 0

	err := withRetry(context.Background(), countingClassifier{NonRetryable}, func() error {
		calls++
		return errors.New("permanent")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_Budget(t *testing.T) {
	shortRetries(t)
	calls := 0

	err := withRetry(context.Background(), countingClassifier{Retryable}, func() error {
		calls++
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, len(retryDelays)+1, calls)
}

func TestWithRetry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0

	err := withRetry(ctx, countingClassifier{Retryable}, func() error {
		calls++
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_NilClassifier(t *testing.T) {
	calls := 0

	err := withRetry(context.Background(), nil, func() error {
		calls++
		return errors.New("x")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_LogsSessionID(t *testing.T) {
	shortRetries(t)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := utils.WithSessionID(l.WithContext(context.Background()), "0196-abc")

	calls := 0
	err := withRetry(ctx, NewSQLiteErrorClassifier(), func() error {
		calls++
		if calls == 1 {
			return sqlite3.Error{Code: sqlite3.ErrBusy}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, buf.String(), `"session_id":"0196-abc"`)
	assert.Contains(t, buf.String(), "retrying database operation")
}
