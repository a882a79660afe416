// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the admin API of the echo server.
//
// It exposes a health probe, the application version, live journal counters
// and the recent session journal. Request tracing and access logging are
// applied as middleware before requests reach the service layer.
package http
