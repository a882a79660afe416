// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-echo-sockets/internal/adapter"
	"github.com/MKhiriev/go-echo-sockets/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxHistory      = 100
	statusLifetime  = 2 * time.Second
	maxPayloadWidth = 60
)

type exchange struct {
	sent  string
	reply string
}

type consoleModel struct {
	ctx    context.Context
	echoer adapter.Echoer
	info   models.AppBuildInfo

	input   textinput.Model
	history []exchange
	sending bool
	status  string
	err     error

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

func newConsoleModel(ctx context.Context, echoer adapter.Echoer, info models.AppBuildInfo) consoleModel {
	input := textinput.New()
	input.Placeholder = "Write a message to send"
	input.CharLimit = 1024
	input.Width = maxPayloadWidth
	input.Focus()

	return consoleModel{
		ctx:      ctx,
		echoer:   echoer,
		info:     info,
		input:    input,
		copyText: clipboard.WriteAll,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyLastEcho()
		case key.Matches(msg, keys.send):
			text := m.input.Value()
			if m.sending || text == "" {
				return m, nil
			}
			m.sending = true
			m.input.Reset()
			return m, m.cmdEcho(text)
		}

	case echoDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.err = msg.err
			m.status = humanizeError(msg.err)
			return m, tea.Quit
		}
		m.history = append(m.history, exchange{sent: msg.sent, reply: msg.reply})
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		return m, nil

	case copiedMsg:
		m.status = "Copied last echo to clipboard"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) cmdEcho(text string) tea.Cmd {
	echoer := m.echoer
	ctx := m.ctx
	return func() tea.Msg {
		reply, err := echoer.Echo(ctx, []byte(text))
		return echoDoneMsg{sent: text, reply: string(reply), err: err}
	}
}

func (m consoleModel) cmdCopyLastEcho() tea.Cmd {
	last, ok := m.lastEcho()
	if !ok {
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(last); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m consoleModel) lastEcho() (string, bool) {
	if len(m.history) == 0 {
		return "", false
	}
	return m.history[len(m.history)-1].reply, true
}

func (m consoleModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.info))
	b.WriteString("\n")

	if len(m.history) == 0 {
		b.WriteString(helpStyle.Render("Nothing sent yet"))
		b.WriteString("\n")
	}
	for _, e := range m.history {
		b.WriteString(sentStyle.Render("Sent: " + fitText(e.sent, maxPayloadWidth)))
		b.WriteString("\n")
		b.WriteString(echoStyle.Render("Read: " + fitText(e.reply, maxPayloadWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	case m.sending:
		b.WriteString(statusStyle.Render("Sending..."))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: send  ctrl+y: copy last echo  esc: quit"))

	return appStyle.Render(b.String())
}
