// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginModel_Success(t *testing.T) {
	env := newTestEnv(t)
	m := NewLoginModel(env.ctx, env.services.AccountService, env.st)
	m.Init()

	typeText(m, "alice")
	m.Update(press("tab"))
	typeText(m, "secret")

	_, cmd := m.Update(press("enter"))
	assert.True(t, m.submitting)

	result := runOne(t, cmd)
	_, cmd = m.Update(result)

	opened, ok := runOne(t, cmd).(SessionOpened)
	require.True(t, ok)
	assert.Equal(t, "alice", opened.Session.Username)
	assert.Empty(t, opened.Notice)
	assert.False(t, m.submitting)
}

func TestLoginModel_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     string
	}{
		{name: "wrong password", username: "alice", password: "nope", want: app.MsgIncorrectPassword},
		{name: "unknown user", username: "bob", password: "secret", want: app.MsgUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			m := NewLoginModel(env.ctx, env.services.AccountService, env.st)

			typeText(m, tt.username)
			m.Update(press("tab"))
			typeText(m, tt.password)

			_, cmd := m.Update(press("enter"))
			_, cmd = m.Update(runOne(t, cmd))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestLoginModel_EmptyFields(t *testing.T) {
	env := newTestEnv(t)
	m := NewLoginModel(env.ctx, env.services.AccountService, env.st)

	typeText(m, "alice")
	_, cmd := m.Update(press("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidDataProvided, m.errMsg)
}

func TestLoginModel_EscReturnsToMenu(t *testing.T) {
	env := newTestEnv(t)
	m := NewLoginModel(env.ctx, env.services.AccountService, env.st)

	_, cmd := m.Update(press("esc"))
	assert.Equal(t, NavigateTo{Page: pageMenu}, runOne(t, cmd))
}

func TestRegisterModel_Success(t *testing.T) {
	env := newTestEnv(t)
	m := NewRegisterModel(env.ctx, env.services.AccountService, env.st)

	picture := filepath.Join(t.TempDir(), "me.PNG")
	require.NoError(t, os.WriteFile(picture, []byte("png"), 0o644))

	typeText(m, "bob")
	m.Update(press("tab"))
	typeText(m, "hunter2")
	m.Update(press("tab"))
	typeText(m, picture)

	_, cmd := m.Update(press("enter"))
	_, cmd = m.Update(runOne(t, cmd))

	opened, ok := runOne(t, cmd).(SessionOpened)
	require.True(t, ok)
	assert.Equal(t, "bob", opened.Session.Username)
	assert.True(t, opened.Session.HasProfileImage)
	assert.Equal(t, app.MsgRegistrationSuccessful, opened.Notice)
}

func TestRegisterModel_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		picture  string
		want     string
	}{
		{name: "taken username", username: "alice", want: app.MsgUsernameAlreadyExists},
		{name: "unsupported picture", username: "bob", picture: "me.gif", want: app.MsgUnsupportedImage},
		{name: "missing picture", username: "bob", picture: "/nonexistent/me.png", want: app.MsgFileUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			m := NewRegisterModel(env.ctx, env.services.AccountService, env.st)

			typeText(m, tt.username)
			m.Update(press("tab"))
			typeText(m, "pw")
			m.Update(press("tab"))
			typeText(m, tt.picture)

			_, cmd := m.Update(press("enter"))
			if cmd != nil {
				_, cmd = m.Update(runOne(t, cmd))
			}

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
		})
	}
}
