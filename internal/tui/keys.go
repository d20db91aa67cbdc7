// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newNote   key.Binding
	search    key.Binding
	reload    key.Binding
	assistant key.Binding
	options   key.Binding
	save      key.Binding
	bold      key.Binding
	italic    key.Binding
	underline key.Binding
	bullets   key.Binding
	numbers   key.Binding
	copy      key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newNote:   key.NewBinding(key.WithKeys("n", "ctrl+n")),
	search:    key.NewBinding(key.WithKeys("/")),
	reload:    key.NewBinding(key.WithKeys("r")),
	assistant: key.NewBinding(key.WithKeys("a", "alt+a")),
	options:   key.NewBinding(key.WithKeys("o")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	bold:      key.NewBinding(key.WithKeys("alt+b")),
	italic:    key.NewBinding(key.WithKeys("alt+i")),
	underline: key.NewBinding(key.WithKeys("alt+u")),
	bullets:   key.NewBinding(key.WithKeys("alt+l")),
	numbers:   key.NewBinding(key.WithKeys("alt+n")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	version:   key.NewBinding(key.WithKeys("v")),
}
