// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
)

// humanizeError turns socket errors into a short line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrConnectionClosed) {
		return "Server closed the connection"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "i/o timeout") {
		return "Server is unavailable"
	}

	return err.Error()
}
