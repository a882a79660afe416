// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-echo-sockets/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderHeader(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Echo console"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("version " + info.BuildVersion() + " (" + info.BuildCommit() + ")"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	return b.String()
}

// fitText cuts v to max bytes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
