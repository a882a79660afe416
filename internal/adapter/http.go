// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-echo-sockets/internal/config"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/internal/utils"
	"github.com/MKhiriev/go-echo-sockets/models"
)

// AdminClient talks to the server's admin HTTP API.
type AdminClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewAdminClient constructs an [AdminClient] for cfg.AdminURL. A URL without
// a scheme is treated as http. Requests are bounded by cfg.RequestTimeout.
func NewAdminClient(cfg config.Client, logger *logger.Logger) (*AdminClient, error) {
	baseURL, err := normalizeBaseURL(cfg.AdminURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdminURL, err)
	}

	return &AdminClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version returns the plain-text body of GET /api/version/.
func (a *AdminClient) Version(ctx context.Context) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Stats returns the journal counters from GET /api/stats.
func (a *AdminClient) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&stats).
		Get("/api/stats")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}

// Sessions returns up to limit recent sessions from GET /api/sessions. A
// non-positive limit leaves the choice to the server.
func (a *AdminClient) Sessions(ctx context.Context, limit int) ([]models.Session, error) {
	var sessions []models.Session

	req := a.client.R().
		SetContext(ctx).
		SetResult(&sessions)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/sessions")
	if err != nil {
		return nil, fmt.Errorf("sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	a.logger.Debug().Int("count", len(sessions)).Msg("fetched sessions")
	return sessions, nil
}
