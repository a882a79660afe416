// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive echo console of the client.
package tui

import (
	"context"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/internal/logger"
	"github.com/MKhiriev/go-echo-sockets/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	info    models.AppBuildInfo
	options []tea.ProgramOption

	logger *logger.Logger
}

// New returns a console that runs full screen. Extra options are passed to
// the bubbletea program, e.g. to replace its input and output.
func New(info models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{
		info:    info,
		options: options,
		logger:  logger,
	}
}

// Run blocks until the user quits or the connection fails. A failed echo is
// returned as the error.
func (t *TUI) Run(ctx context.Context, echoer adapter.Echoer) error {
	model := newConsoleModel(ctx, echoer, t.info)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("console stopped")
		return err
	}

	result, ok := finalModel.(consoleModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
