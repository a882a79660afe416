// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It selects one of the run modes (a single UDP request, the line based TCP
// echo loop, the interactive echo console, or an admin API report) and drives
// the matching socket adapter against standard input and output.
package client
