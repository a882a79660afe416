// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send key.Binding
	copy key.Binding
	quit key.Binding
}

var keys = keyMap{
	send: key.NewBinding(key.WithKeys("enter")),
	copy: key.NewBinding(key.WithKeys("ctrl+y")),
	quit: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
