// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-echo-sockets/models"
)

// recentSessions is how many journal entries the stats report lists.
const recentSessions = 10

// runStats prints the server version, its counters and the latest sessions.
func (a *App) runStats(ctx context.Context) error {
	version, err := a.adapters.Admin.Version(ctx)
	if err != nil {
		return fmt.Errorf("error fetching server version: %w", err)
	}

	stats, err := a.adapters.Admin.Stats(ctx)
	if err != nil {
		return fmt.Errorf("error fetching server stats: %w", err)
	}

	sessions, err := a.adapters.Admin.Sessions(ctx, recentSessions)
	if err != nil {
		return fmt.Errorf("error fetching sessions: %w", err)
	}

	fmt.Fprintf(a.out, "Server version: %s\n", version)
	fmt.Fprintf(a.out, "Up since: %s\n", stats.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(a.out, "Active sessions: %d\n", stats.ActiveSessions)
	fmt.Fprintf(a.out, "Total sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(a.out, "Bytes in/out: %d/%d\n", stats.TotalBytesIn, stats.TotalBytesOut)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, renderSessions(sessions))

	return nil
}

func renderSessions(sessions []models.Session) string {
	if len(sessions) == 0 {
		return "No sessions recorded"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TRANSPORT", "REMOTE", "ENDED", "DURATION", "IN", "OUT", "REASON")

	for _, s := range sessions {
		t.Row(
			s.ID,
			string(s.Transport),
			s.RemoteAddr,
			s.EndedAt.Format(time.DateTime),
			s.Duration().Round(time.Millisecond).String(),
			strconv.FormatInt(s.BytesIn, 10),
			strconv.FormatInt(s.BytesOut, 10),
			string(s.CloseReason),
		)
	}

	return t.String()
}
