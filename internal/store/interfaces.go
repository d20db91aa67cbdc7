// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/atmost-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the low-level persistence of accounts in the "users"
// table. Password hashing happens above this layer; the repository stores
// whatever digest it is given.
type AccountRepository interface {
	// Create inserts a new account and returns its identifier.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	Create(ctx context.Context, account models.Account) (int64, error)
	// FindByUsername returns the account with exactly this username.
	// Returns ErrAccountNotFound when there is none.
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// FindByID returns the account with the given identifier.
	// Returns ErrAccountNotFound when there is none.
	FindByID(ctx context.Context, accountID int64) (models.Account, error)
	UpdateUsername(ctx context.Context, accountID int64, username string) error
	UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error
	UpdateProfileImage(ctx context.Context, accountID int64, image []byte) error
}

// NoteRepository is the low-level persistence of notes in the "notes" table.
// Every method is scoped to an owner; notes of other accounts are never
// returned or modified.
type NoteRepository interface {
	// Create inserts a note and returns its identifier.
	Create(ctx context.Context, note models.Note) (int64, error)
	// Update rewrites title, body and tags of note.ID when it belongs to
	// note.OwnerID. Returns ErrNoteNotFound otherwise.
	Update(ctx context.Context, note models.Note) error
	// GetByTitle returns the first note (lowest identifier) with this exact
	// title. Returns ErrNoteNotFound when there is none.
	GetByTitle(ctx context.Context, ownerID int64, title string) (models.Note, error)
	// GetByID returns the note with this identifier.
	// Returns ErrNoteNotFound when there is none.
	GetByID(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	// List returns id/title pairs of every note in storage order.
	List(ctx context.Context, ownerID int64) ([]models.NoteHeader, error)
	// Search returns id/title pairs of the notes whose title, body or tags
	// contain query as a case-sensitive substring, in storage order.
	Search(ctx context.Context, ownerID int64, query string) ([]models.NoteHeader, error)
	// BulkCreate inserts all documents in one transaction with empty tags
	// and returns the number of notes created.
	BulkCreate(ctx context.Context, ownerID int64, docs []models.NoteDocument) (int, error)
	// Documents returns title/body pairs of every note in storage order.
	Documents(ctx context.Context, ownerID int64) ([]models.NoteDocument, error)
}
