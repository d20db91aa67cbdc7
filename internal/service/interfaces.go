// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the operations the user interface performs on
// accounts, notes, the AI assistant and the note exchange directory.
//
// Every operation except registration and login takes the caller's
// [*Session]. Failures are reported as sentinel errors from this package or
// from the store and adapter packages; [UserMessage] turns them into the
// texts shown to the user.
package service

import (
	"context"

	"github.com/MKhiriev/atmost-notes/models"
)

// AccountService registers, authenticates and edits accounts.
type AccountService interface {
	// Register creates an account and opens a session for it. image may be
	// nil. Returns ErrInvalidDataProvided for an empty username or password
	// and store.ErrUsernameAlreadyExists when the name is taken.
	Register(ctx context.Context, username, password string, image []byte) (*Session, error)

	// Login verifies the credentials and opens a session.
	// Returns store.ErrAccountNotFound for an unknown username and
	// ErrWrongPassword for a wrong password. Digests of an outdated scheme
	// are upgraded on success.
	Login(ctx context.Context, username, password string) (*Session, error)

	// ChangeUsername renames the session's account.
	// Returns store.ErrUsernameAlreadyExists when the name is taken.
	ChangeUsername(ctx context.Context, session *Session, username string) error

	// ChangePassword replaces the password. The old password is checked
	// first (ErrWrongCurrentPassword), then the confirmation
	// (ErrPasswordMismatch).
	ChangePassword(ctx context.Context, session *Session, oldPassword, newPassword, confirmation string) error

	// ChangeProfileImage stores image as the account's profile picture.
	ChangeProfileImage(ctx context.Context, session *Session, image []byte) error
}

// AccountServiceWrapper decorates an AccountService, e.g. with input
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// NoteService manages the notes of the session's account.
type NoteService interface {
	// Save creates a note when the session has no current note and updates
	// the current note otherwise. The saved note becomes current.
	Save(ctx context.Context, session *Session, title, body, tags string) (models.Note, error)

	// Open loads a note by identifier and makes it current.
	Open(ctx context.Context, session *Session, noteID int64) (models.Note, error)

	// OpenByTitle loads the first note with exactly this title and makes it
	// current. Returns store.ErrNoteNotFound when there is none.
	OpenByTitle(ctx context.Context, session *Session, title string) (models.Note, error)

	// ListTitles returns all note titles in storage order.
	ListTitles(ctx context.Context, session *Session) ([]string, error)

	// Search returns titles of notes whose title, body or tags contain query
	// (case-sensitive), in storage order.
	Search(ctx context.Context, session *Session, query string) ([]string, error)

	// List and SearchNotes are the identifier-carrying variants of
	// ListTitles and Search.
	List(ctx context.Context, session *Session) ([]models.NoteHeader, error)
	SearchNotes(ctx context.Context, session *Session, query string) ([]models.NoteHeader, error)

	// BulkImport creates one note with empty tags per document in a single
	// transaction and returns the number created.
	BulkImport(ctx context.Context, session *Session, docs []models.NoteDocument) (int, error)

	// ExportAll returns the title and body of every note in storage order.
	ExportAll(ctx context.Context, session *Session) ([]models.NoteDocument, error)
}

// NoteServiceWrapper decorates a NoteService.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// AssistantService builds prompts for the AI writing assistant and forwards
// them to the text-generation API. At most one request per session is in
// flight; an overlapping call fails with ErrAssistantBusy. Every call fails
// with ErrAssistantDisabled when the session's toggle is off.
type AssistantService interface {
	// Chat sends message as is.
	Chat(ctx context.Context, session *Session, message string) (string, error)

	// Summarize asks for a summary of the plain text of body.
	// Requires a current note (ErrNoNoteToSummarize).
	Summarize(ctx context.Context, session *Session, body string) (string, error)

	// Suggest asks for improvement suggestions for the plain text of body.
	// Requires a current note (ErrNoNoteForSuggestions).
	Suggest(ctx context.Context, session *Session, body string) (string, error)
}

// ExchangeService moves notes between the store and a directory of HTML
// files. Tags are not part of the exchange format.
type ExchangeService interface {
	// Export writes every note to dir as "<title>.html", overwriting
	// existing files, and returns the number of files written.
	Export(ctx context.Context, session *Session, dir string) (int, error)

	// Import creates a note from every file in dir matching the configured
	// pattern and returns the number of notes created.
	Import(ctx context.Context, session *Session, dir string) (int, error)
}
