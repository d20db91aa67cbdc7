// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/utils"
	"github.com/MKhiriev/atmost-notes/models"
)

// Session is the explicit per-login context passed to every service call.
// It replaces the process-wide "current user" and "current note" globals of
// a desktop application. A Session must not be copied after first use.
type Session struct {
	// ID uniquely identifies the session in logs.
	ID string

	AccountID       int64
	Username        string
	HasProfileImage bool

	// NoteID is the note currently loaded in the editor. Zero means the
	// editor holds a new, unsaved note.
	NoteID int64

	// AIEnabled mirrors the assistant on/off toggle.
	AIEnabled bool

	Theme models.Theme

	// busy is set while an assistant request is in flight.
	busy atomic.Bool
}

// newSession opens a session for account with the presentation defaults
// from ui.
func newSession(account models.Account, ui config.UI) *Session {
	theme, _ := models.ThemeByName(ui.Theme)

	return &Session{
		ID:              utils.NewSessionID(),
		AccountID:       account.ID,
		Username:        account.Username,
		HasProfileImage: account.HasProfileImage(),
		AIEnabled:       !ui.AIDisabled,
		Theme:           theme,
	}
}

// LoggedIn reports whether s belongs to an authenticated account.
func (s *Session) LoggedIn() bool {
	return s != nil && s.AccountID > 0
}

// NewNote clears the current note so that the next save creates one.
func (s *Session) NewNote() {
	s.NoteID = 0
}

// Busy reports whether an assistant request is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Context returns ctx enriched with the session and account identifiers.
func (s *Session) Context(ctx context.Context) context.Context {
	return utils.WithSession(ctx, s.ID, s.AccountID)
}

func (s *Session) authorize() error {
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

// acquire sets the busy flag. It returns false when a request is already in
// flight.
func (s *Session) acquire() bool {
	return s.busy.CompareAndSwap(false, true)
}

func (s *Session) release() {
	s.busy.Store(false)
}
