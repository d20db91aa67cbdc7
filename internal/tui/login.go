// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel renders the username and password inputs and dispatches an
// async login command on enter. A successful login ends the login flow
// through [SessionOpened].
type LoginModel struct {
	ctx      context.Context
	accounts service.AccountService
	st       *styles

	form       *form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, accounts service.AccountService, st *styles) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		accounts: accounts,
		st:       st,
		form:     newLoginForm(),
	}
}

func newLoginForm() *form {
	return newForm("",
		fieldSpec{label: "Username", placeholder: "username", limit: 64},
		fieldSpec{label: "Password", placeholder: "password", secret: true, limit: 256},
	)
}

// Init resets the form every time the page is opened.
func (m *LoginModel) Init() tea.Cmd {
	m.form = newLoginForm()
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = userMessage(result.err)
			return m, nil
		}
		session := result.session
		return m, func() tea.Msg { return SessionOpened{Session: session} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if username == "" || password == "" {
				m.errMsg = app.MsgInvalidDataProvided
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	return m, m.form.Update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n\n[Logging in...]")
	} else {
		b.WriteString("\n\n")
		b.WriteString(m.st.button.Render("Login"))
	}
	b.WriteString(renderFeedback(m.st, "", m.errMsg))

	return renderPage(m.st, "LOGIN", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		session, err := accounts.Login(ctx, username, password)
		return authResultMsg{session: session, err: err}
	}
}
