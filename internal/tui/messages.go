// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/atmost-notes/internal/service"
	"github.com/MKhiriev/atmost-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names known to RootModel.
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageNotes     = "notes"
	pageEditor    = "editor"
	pageAssistant = "assistant"
	pageOptions   = "options"
)

// NavigateTo asks RootModel to switch to Page. When Payload is set it is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SessionOpened finishes the login flow with an authenticated session.
// Notice is shown once the main screen opens.
type SessionOpened struct {
	Session *service.Session
	Notice  string
}

// LogoutRequested finishes the main loop and returns to the login flow.
type LogoutRequested struct{}

type authResultMsg struct {
	session *service.Session
	err     error
}

type notesLoadedMsg struct {
	notes []models.NoteHeader
	query string
	err   error
}

// statusNotice carries a message for the page that is being opened.
type statusNotice struct {
	text string
}

// editorLoad opens note in the editor. A zero note starts a new one.
type editorLoad struct {
	note models.Note
}

type noteOpenedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type assistantDoneMsg struct {
	tab    assistantTab
	prompt string
	answer string
	err    error
}

type optionDoneMsg struct {
	notice string
	err    error
}

type copiedMsg struct {
	err error
}

// QuitRequested ends the program as if the user pressed ctrl+c.
type QuitRequested struct{}

// assistantOpen opens the assistant panel; esc returns to back.
type assistantOpen struct {
	back string
}
