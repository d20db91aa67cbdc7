// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/utils"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s := newSession(models.Account{ID: 9, Username: "bob"}, config.UI{Theme: "custom", AIDisabled: true})

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, int64(9), s.AccountID)
	assert.Equal(t, "bob", s.Username)
	assert.False(t, s.AIEnabled)
	assert.Equal(t, models.ThemeCustom, s.Theme.Name)
	assert.True(t, s.LoggedIn())

	other := newSession(models.Account{ID: 9}, config.UI{Theme: "neon"})
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, models.LightTheme(), other.Theme, "unknown theme falls back to light")
}

func TestSession_LoggedIn(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.LoggedIn())
	assert.False(t, (&Session{}).LoggedIn())
	assert.True(t, (&Session{AccountID: 1}).LoggedIn())
}

func TestSession_BusyFlag(t *testing.T) {
	s := &Session{AccountID: 1}

	assert.True(t, s.acquire())
	assert.True(t, s.Busy())
	assert.False(t, s.acquire())

	s.release()
	assert.False(t, s.Busy())
	assert.True(t, s.acquire())
}

func TestSession_Context(t *testing.T) {
	s := &Session{ID: "abc", AccountID: 4}
	ctx := s.Context(context.Background())

	id, ok := utils.GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(4), accountID)
}

func TestSession_NewNote(t *testing.T) {
	s := &Session{AccountID: 1, NoteID: 7}
	s.NewNote()
	assert.Zero(t, s.NoteID)
}
