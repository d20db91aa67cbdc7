// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	msg   tea.Msg
}

// MenuModel is the first page of the login flow.
type MenuModel struct {
	st     *styles
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(st *styles) *MenuModel {
	return &MenuModel{
		st: st,
		items: []menuItem{
			{label: "Login", msg: NavigateTo{Page: pageLogin}},
			{label: "Register", msg: NavigateTo{Page: pageRegister}},
			{label: "Quit", msg: QuitRequested{}},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(statusNotice); ok {
		m.status = notice.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		next := m.items[m.idx].msg
		return m, func() tea.Msg { return next }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("  %d. %s", i+1, item.label)
		if i == m.idx {
			line = m.st.selected.Render(fmt.Sprintf("> %d. %s", i+1, item.label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(renderFeedback(m.st, m.status, ""))

	return renderPage(m.st, "ATMOST NOTES", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
