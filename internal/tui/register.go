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

// RegisterModel creates an account and logs straight into it.
type RegisterModel struct {
	ctx      context.Context
	accounts service.AccountService
	st       *styles

	form       *form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, accounts service.AccountService, st *styles) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		accounts: accounts,
		st:       st,
		form:     newRegisterForm(),
	}
}

func newRegisterForm() *form {
	return newForm("",
		fieldSpec{label: "Username", placeholder: "username", limit: 64},
		fieldSpec{label: "Password", placeholder: "password", secret: true, limit: 256},
		fieldSpec{label: "Profile picture", placeholder: "optional path to PNG/JPG/BMP"},
	)
}

func (m *RegisterModel) Init() tea.Cmd {
	m.form = newRegisterForm()
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = userMessage(result.err)
			return m, nil
		}
		session := result.session
		return m, func() tea.Msg {
			return SessionOpened{Session: session, Notice: app.MsgRegistrationSuccessful}
		}
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

			image, err := readProfileImage(m.form.value(2))
			if err != nil {
				m.errMsg = userMessage(err)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, password, image)
		}
	}

	return m, m.form.Update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n\n[Registering...]")
	} else {
		b.WriteString("\n\n")
		b.WriteString(m.st.button.Render("Register"))
	}
	b.WriteString(renderFeedback(m.st, "", m.errMsg))

	return renderPage(m.st, "REGISTER", b.String(), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, password string, image []byte) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		session, err := accounts.Register(ctx, username, password, image)
		return authResultMsg{session: session, err: err}
	}
}
