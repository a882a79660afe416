// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/models"
)

func newTestAdminClient(t *testing.T, serverURL string) *AdminClient {
	t.Helper()

	a, err := NewAdminClient(config.Client{AdminURL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── NewAdminClient ───────────────────────────────────────────────────────────

func TestNewAdminClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://"} {
		_, err := NewAdminClient(config.Client{AdminURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAdminURL, "url %q", raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL(" https://admin.example:9000 ")
	require.NoError(t, err)
	assert.Equal(t, "https://admin.example:9000", got)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	v, err := newTestAdminClient(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

// ── Stats ────────────────────────────────────────────────────────────────────

func TestStats_Success(t *testing.T) {
	want := models.Stats{
		ActiveSessions: 1,
		TotalSessions:  7,
		TotalBytesIn:   100,
		TotalBytesOut:  120,
		StartedAt:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestAdminClient(t, srv.URL).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want.TotalSessions, got.TotalSessions)
	assert.Equal(t, want.TotalBytesOut, got.TotalBytesOut)
	assert.True(t, want.StartedAt.Equal(got.StartedAt))
}

func TestStats_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"journal unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestAdminClient(t, srv.URL).Stats(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "journal unavailable")
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestSessions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sessions", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Session{
			{ID: "b", Transport: models.TransportTCP, CloseReason: models.ClosePeerClosed},
			{ID: "a", Transport: models.TransportUDP, CloseReason: models.CloseReplied},
		})
	}))
	defer srv.Close()

	sessions, err := newTestAdminClient(t, srv.URL).Sessions(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "b", sessions[0].ID)
	assert.Equal(t, models.TransportUDP, sessions[1].Transport)
}

func TestSessions_NoLimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	sessions, err := newTestAdminClient(t, srv.URL).Sessions(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessions_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid limit"}`))
	}))
	defer srv.Close()

	_, err := newTestAdminClient(t, srv.URL).Sessions(context.Background(), 5000)

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid limit")
}

func TestSessions_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdminClient(t, url).Sessions(context.Background(), 1)

	assert.Error(t, err)
}
