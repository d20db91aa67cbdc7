// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) (*OptionsModel, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	m := NewOptionsModel(env.ctx, env.services.AccountService, env.services.ExchangeService, env.session, env.st)
	m.Init()
	return m, env
}

// choose moves the cursor to action and presses enter.
func choose(m *OptionsModel, action optionAction) tea.Cmd {
	for m.idx > 0 {
		m.Update(press("up"))
	}
	for i := 0; i < int(action); i++ {
		m.Update(press("down"))
	}
	_, cmd := m.Update(press("enter"))
	return cmd
}

// apply submits the open form and feeds the result back.
func apply(t *testing.T, m *OptionsModel) {
	t.Helper()
	_, cmd := m.Update(press("enter"))
	if cmd != nil {
		m.Update(runOne(t, cmd))
	}
}

func TestOptionsModel_ChangeUsername(t *testing.T) {
	m, env := newTestOptions(t)

	choose(m, optUsername)
	require.NotNil(t, m.form)
	assert.Equal(t, "alice", m.form.value(0))

	m.form.inputs[0].SetValue("alicia")
	apply(t, m)

	assert.Equal(t, app.MsgUsernameChanged, m.status)
	assert.Nil(t, m.form)
	assert.Equal(t, "alicia", env.session.Username)

	_, err := env.services.AccountService.Login(env.ctx, "alicia", "secret")
	assert.NoError(t, err)
}

func TestOptionsModel_ChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		want    string
	}{
		{name: "success", current: "secret", next: "n3w", confirm: "n3w", want: app.MsgPasswordChanged},
		{name: "wrong current", current: "nope", next: "n3w", confirm: "n3w", want: app.MsgIncorrectCurrentPassword},
		{name: "mismatch", current: "secret", next: "n3w", confirm: "other", want: app.MsgPasswordsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestOptions(t)

			choose(m, optPassword)
			typeText(m, tt.current)
			m.Update(press("tab"))
			typeText(m, tt.next)
			m.Update(press("tab"))
			typeText(m, tt.confirm)
			apply(t, m)

			if tt.want == app.MsgPasswordChanged {
				assert.Equal(t, tt.want, m.status)
				assert.Empty(t, m.errMsg)
				return
			}
			assert.Equal(t, tt.want, m.errMsg)
			assert.NotNil(t, m.form, "form stays open on failure")
		})
	}
}

func TestOptionsModel_ProfilePicture(t *testing.T) {
	m, env := newTestOptions(t)

	choose(m, optPicture)
	apply(t, m)
	assert.Equal(t, app.MsgInvalidDataProvided, m.errMsg)

	m.form.inputs[0].SetValue("cat.gif")
	apply(t, m)
	assert.Equal(t, app.MsgUnsupportedImage, m.errMsg)

	picture := filepath.Join(t.TempDir(), "cat.jpg")
	require.NoError(t, os.WriteFile(picture, []byte("jpg"), 0o644))
	m.form.inputs[0].SetValue(picture)
	apply(t, m)

	assert.Empty(t, m.errMsg)
	assert.Equal(t, app.MsgProfilePictureChanged, m.status)
	assert.True(t, env.session.HasProfileImage)
}

func TestOptionsModel_Themes(t *testing.T) {
	m, env := newTestOptions(t)

	choose(m, optTheme)
	require.True(t, m.choosing)
	m.Update(press("down"))
	m.Update(press("enter"))

	assert.Equal(t, models.DarkTheme(), env.session.Theme)
	assert.Equal(t, models.DarkTheme(), m.st.theme)
	assert.Equal(t, app.MsgThemeChanged, m.status)

	choose(m, optColors)
	require.NotNil(t, m.form)
	assert.Equal(t, models.DarkTheme().Background, m.form.value(0))

	m.form.inputs[0].SetValue("black")
	apply(t, m)
	assert.Equal(t, app.MsgInvalidColor, m.errMsg)
	assert.Equal(t, models.DarkTheme(), env.session.Theme)

	m.form.inputs[0].SetValue("#000000")
	apply(t, m)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, models.ThemeCustom, env.session.Theme.Name)
	assert.Equal(t, "#000000", env.session.Theme.Background)
	assert.Equal(t, models.DarkTheme().Accent, env.session.Theme.Accent)
	assert.Contains(t, m.View(), "Theme: Custom")
}

func TestOptionsModel_ToggleAssistant(t *testing.T) {
	m, env := newTestOptions(t)
	require.True(t, env.session.AIEnabled)

	choose(m, optAssistant)
	assert.False(t, env.session.AIEnabled)
	assert.Equal(t, app.MsgAssistantOff, m.status)

	choose(m, optAssistant)
	assert.True(t, env.session.AIEnabled)
	assert.Equal(t, app.MsgAssistantOn, m.status)
}

func TestOptionsModel_ExportImport(t *testing.T) {
	m, env := newTestOptions(t)
	env.saveNote(t, "Groceries", "<p>milk</p>")

	dir := t.TempDir()
	choose(m, optExport)
	m.form.inputs[0].SetValue(dir)
	apply(t, m)

	assert.Empty(t, m.errMsg)
	assert.Equal(t, app.MsgExportComplete+" (1 notes)", m.status)
	content, err := os.ReadFile(filepath.Join(dir, "Groceries.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>milk</p>", string(content))

	choose(m, optImport)
	m.form.inputs[0].SetValue(dir)
	apply(t, m)
	assert.Equal(t, app.MsgImportComplete+" (1 notes)", m.status)

	titles, err := env.services.NoteService.ListTitles(env.ctx, env.session)
	require.NoError(t, err)
	assert.Equal(t, []string{"Groceries", "Groceries"}, titles)

	choose(m, optImport)
	m.form.inputs[0].SetValue(filepath.Join(dir, "missing"))
	apply(t, m)
	assert.Equal(t, app.MsgFileUnreadable, m.errMsg)
}

func TestOptionsModel_Navigation(t *testing.T) {
	m, _ := newTestOptions(t)

	choose(m, optExport)
	require.NotNil(t, m.form)
	m.Update(press("esc"))
	assert.Nil(t, m.form)

	_, cmd := m.Update(press("esc"))
	assert.Equal(t, NavigateTo{Page: pageNotes}, runOne(t, cmd))

	cmd = choose(m, optBack)
	assert.Equal(t, NavigateTo{Page: pageNotes}, runOne(t, cmd))
}
