// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type echoDoneMsg struct {
	sent  string
	reply string
	err   error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
