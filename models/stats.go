// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Stats is a point-in-time snapshot of the server's journal counters.
type Stats struct {
	ActiveSessions int64 `json:"active_sessions"`
	TotalSessions  int64 `json:"total_sessions"`
	TotalBytesIn   int64 `json:"total_bytes_in"`
	TotalBytesOut  int64 `json:"total_bytes_out"`

	// StartedAt is when the server process began accepting traffic.
	StartedAt time.Time `json:"started_at"`
}

// ErrorResponse is the JSON body returned by the admin API on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
