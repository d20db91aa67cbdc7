// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type optionAction int

const (
	optUsername optionAction = iota
	optPassword
	optPicture
	optTheme
	optColors
	optAssistant
	optExport
	optImport
	optBack
)

var optionLabels = []string{
	optUsername:  "Change username",
	optPassword:  "Change password",
	optPicture:   "Change profile picture",
	optTheme:     "Theme",
	optColors:    "Customize colours",
	optAssistant: "AI assistant",
	optExport:    "Export notes",
	optImport:    "Import notes",
	optBack:      "Back",
}

var themeChoices = []string{models.ThemeLight, models.ThemeDark, models.ThemeCustom}

// OptionsModel holds the account and appearance settings. Actions that need
// input open a form below the list; esc closes the form first.
type OptionsModel struct {
	ctx      context.Context
	accounts service.AccountService
	exchange service.ExchangeService
	session  *service.Session
	st       *styles

	idx      int
	active   optionAction
	form     *form
	themeIdx int
	choosing bool
	busy     bool

	status string
	errMsg string
}

func NewOptionsModel(ctx context.Context, accounts service.AccountService, exchange service.ExchangeService, session *service.Session, st *styles) *OptionsModel {
	return &OptionsModel{
		ctx:      ctx,
		accounts: accounts,
		exchange: exchange,
		session:  session,
		st:       st,
	}
}

func (m *OptionsModel) Init() tea.Cmd {
	m.closeForm()
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case optionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.closeForm()
		m.errMsg = ""
		m.status = msg.notice
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.busy:
			return m, nil
		case m.choosing:
			return m, m.updateThemeChoice(msg)
		case m.form != nil:
			return m, m.updateForm(msg)
		}
		return m, m.updateList(msg)
	}

	if m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

func (m *OptionsModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(optionLabels)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.esc):
		return func() tea.Msg { return NavigateTo{Page: pageNotes} }
	case key.Matches(msg, keys.enter):
		m.status = ""
		m.errMsg = ""
		return m.open(optionAction(m.idx))
	}
	return nil
}

func (m *OptionsModel) open(action optionAction) tea.Cmd {
	m.active = action

	switch action {
	case optUsername:
		m.form = newForm("New username",
			fieldSpec{label: "Username", value: m.session.Username, limit: 64})
	case optPassword:
		m.form = newForm("Change password",
			fieldSpec{label: "Current password", secret: true, limit: 256},
			fieldSpec{label: "New password", secret: true, limit: 256},
			fieldSpec{label: "Confirm password", secret: true, limit: 256},
		)
	case optPicture:
		m.form = newForm("Profile picture",
			fieldSpec{label: "Path", placeholder: "path to PNG/JPG/BMP"})
	case optTheme:
		m.choosing = true
		m.themeIdx = 0
		for i, name := range themeChoices {
			if name == m.session.Theme.Name {
				m.themeIdx = i
			}
		}
	case optColors:
		specs := make([]fieldSpec, 0, len(models.ThemeColorFields))
		for _, field := range models.ThemeColorFields {
			specs = append(specs, fieldSpec{label: field, value: m.session.Theme.Color(field), limit: 7})
		}
		m.form = newForm("Custom colours (#RRGGBB)", specs...)
	case optAssistant:
		m.session.AIEnabled = !m.session.AIEnabled
		m.status = app.MsgAssistantOff
		if m.session.AIEnabled {
			m.status = app.MsgAssistantOn
		}
	case optExport:
		m.form = newForm("Export notes to directory",
			fieldSpec{label: "Directory", placeholder: "path to an existing directory"})
	case optImport:
		m.form = newForm("Import notes from directory",
			fieldSpec{label: "Directory", placeholder: "path to an existing directory"})
	case optBack:
		return func() tea.Msg { return NavigateTo{Page: pageNotes} }
	}
	return nil
}

func (m *OptionsModel) updateThemeChoice(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		if m.themeIdx > 0 {
			m.themeIdx--
		}
	case key.Matches(msg, keys.down):
		if m.themeIdx < len(themeChoices)-1 {
			m.themeIdx++
		}
	case key.Matches(msg, keys.esc):
		m.choosing = false
	case key.Matches(msg, keys.enter):
		theme, _ := models.ThemeByName(themeChoices[m.themeIdx])
		m.setTheme(theme)
		m.choosing = false
		m.status = app.MsgThemeChanged
	}
	return nil
}

func (m *OptionsModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.closeForm()
		m.errMsg = ""
		return nil
	case key.Matches(msg, keys.enter):
		return m.submit()
	}
	return m.form.Update(msg)
}

func (m *OptionsModel) submit() tea.Cmd {
	ctx := m.ctx
	session := m.session
	values := m.form.values()

	switch m.active {
	case optUsername:
		accounts := m.accounts
		username := strings.TrimSpace(values[0])
		return m.run(app.MsgUsernameChanged, func() error {
			return accounts.ChangeUsername(ctx, session, username)
		})

	case optPassword:
		accounts := m.accounts
		return m.run(app.MsgPasswordChanged, func() error {
			return accounts.ChangePassword(ctx, session, values[0], values[1], values[2])
		})

	case optPicture:
		if strings.TrimSpace(values[0]) == "" {
			m.errMsg = app.MsgInvalidDataProvided
			return nil
		}
		image, err := readProfileImage(values[0])
		if err != nil {
			m.errMsg = userMessage(err)
			return nil
		}
		accounts := m.accounts
		return m.run(app.MsgProfilePictureChanged, func() error {
			return accounts.ChangeProfileImage(ctx, session, image)
		})

	case optColors:
		theme, err := customTheme(m.session.Theme, values)
		if err != nil {
			m.errMsg = userMessage(err)
			return nil
		}
		m.setTheme(theme)
		m.closeForm()
		m.errMsg = ""
		m.status = app.MsgThemeChanged
		return nil

	case optExport:
		exchange := m.exchange
		dir := expandHome(values[0])
		return m.runCount(app.MsgExportComplete, func() (int, error) {
			return exchange.Export(ctx, session, dir)
		})

	case optImport:
		exchange := m.exchange
		dir := expandHome(values[0])
		return m.runCount(app.MsgImportComplete, func() (int, error) {
			return exchange.Import(ctx, session, dir)
		})
	}
	return nil
}

func (m *OptionsModel) run(notice string, call func() error) tea.Cmd {
	m.busy = true
	m.errMsg = ""
	return func() tea.Msg {
		if err := call(); err != nil {
			return optionDoneMsg{err: err}
		}
		return optionDoneMsg{notice: notice}
	}
}

func (m *OptionsModel) runCount(notice string, call func() (int, error)) tea.Cmd {
	m.busy = true
	m.errMsg = ""
	return func() tea.Msg {
		count, err := call()
		if err != nil {
			return optionDoneMsg{err: err}
		}
		return optionDoneMsg{notice: fmt.Sprintf("%s (%d notes)", notice, count)}
	}
}

func (m *OptionsModel) setTheme(theme models.Theme) {
	m.session.Theme = theme
	m.st.apply(theme)
}

func (m *OptionsModel) closeForm() {
	m.form = nil
	m.choosing = false
	m.busy = false
}

// customTheme applies the colour fields in models.ThemeColorFields order.
func customTheme(base models.Theme, values []string) (models.Theme, error) {
	theme := base
	for i, field := range models.ThemeColorFields {
		if i >= len(values) {
			break
		}
		var err error
		if theme, err = theme.WithColor(field, values[i]); err != nil {
			return base, fmt.Errorf("%w: %w", errInvalidColor, err)
		}
	}
	theme.Name = models.ThemeCustom
	return theme, nil
}

func (m *OptionsModel) View() string {
	var b strings.Builder

	b.WriteString(m.st.sidebar.Render(fmt.Sprintf("%s │ AI: %s │ Theme: %s",
		m.session.Username, onOff(m.session.AIEnabled), m.session.Theme.Name)))
	b.WriteString("\n\n")

	for i, label := range optionLabels {
		switch optionAction(i) {
		case optTheme:
			label += ": " + m.session.Theme.Name
		case optAssistant:
			label += ": " + onOff(m.session.AIEnabled)
		}
		line := "  " + label
		if i == m.idx {
			line = m.st.selected.Render("> " + label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.choosing {
		b.WriteString("\n")
		for i, name := range themeChoices {
			line := "  " + name
			if i == m.themeIdx {
				line = m.st.selected.Render("> " + name)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.form != nil {
		b.WriteString("\n")
		b.WriteString(m.st.box.Render(m.form.View()))
		if m.busy {
			b.WriteString("\n[Working...]")
		}
	}

	b.WriteString(renderFeedback(m.st, m.status, m.errMsg))

	hotKeys := "enter: select │ ↑/↓: navigate │ esc: back"
	if m.form != nil {
		hotKeys = "enter: apply │ tab: next field │ esc: cancel"
	}
	return renderPage(m.st, "OPTIONS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
