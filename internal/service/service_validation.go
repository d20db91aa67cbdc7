// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/atmost-notes/internal/validators"
	"github.com/MKhiriev/atmost-notes/models"
)

// AccountValidationService rejects malformed account input with
// ErrInvalidDataProvided before the wrapped service runs.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *AccountValidationService) Register(ctx context.Context, username, password string, image []byte) (*Session, error) {
	if err := v.validate(ctx, models.Account{Username: username, Password: password}); err != nil {
		return nil, err
	}
	return v.inner.Register(ctx, username, password, image)
}

func (v *AccountValidationService) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := v.validate(ctx, models.Account{Username: username}, validators.FieldUsername); err != nil {
		return nil, err
	}
	return v.inner.Login(ctx, username, password)
}

func (v *AccountValidationService) ChangeUsername(ctx context.Context, session *Session, username string) error {
	if err := v.validate(ctx, models.Account{Username: username}, validators.FieldUsername); err != nil {
		return err
	}
	return v.inner.ChangeUsername(ctx, session, username)
}

// ChangePassword is passed through unvalidated: the old password has to be
// checked before anything else is reported.
func (v *AccountValidationService) ChangePassword(ctx context.Context, session *Session, oldPassword, newPassword, confirmation string) error {
	return v.inner.ChangePassword(ctx, session, oldPassword, newPassword, confirmation)
}

func (v *AccountValidationService) ChangeProfileImage(ctx context.Context, session *Session, image []byte) error {
	return v.inner.ChangeProfileImage(ctx, session, image)
}

func (v *AccountValidationService) validate(ctx context.Context, account models.Account, fields ...string) error {
	if err := v.validator.Validate(ctx, account, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// NoteValidationService checks titles and imported documents before the
// wrapped NoteService stores them.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) Save(ctx context.Context, session *Session, title, body, tags string) (models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{Title: title}, validators.FieldTitle); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Save(ctx, session, title, body, tags)
}

func (v *NoteValidationService) Open(ctx context.Context, session *Session, noteID int64) (models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{ID: noteID}, validators.FieldNoteID); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Open(ctx, session, noteID)
}

func (v *NoteValidationService) OpenByTitle(ctx context.Context, session *Session, title string) (models.Note, error) {
	return v.inner.OpenByTitle(ctx, session, title)
}

func (v *NoteValidationService) ListTitles(ctx context.Context, session *Session) ([]string, error) {
	return v.inner.ListTitles(ctx, session)
}

func (v *NoteValidationService) Search(ctx context.Context, session *Session, query string) ([]string, error) {
	return v.inner.Search(ctx, session, query)
}

func (v *NoteValidationService) List(ctx context.Context, session *Session) ([]models.NoteHeader, error) {
	return v.inner.List(ctx, session)
}

func (v *NoteValidationService) SearchNotes(ctx context.Context, session *Session, query string) ([]models.NoteHeader, error) {
	return v.inner.SearchNotes(ctx, session, query)
}

// BulkImport turns line breaks in imported titles into spaces so that one
// odd file name does not fail the whole batch.
func (v *NoteValidationService) BulkImport(ctx context.Context, session *Session, docs []models.NoteDocument) (int, error) {
	cleaned := make([]models.NoteDocument, len(docs))
	for i, doc := range docs {
		doc.Title = validators.SingleLineTitle(doc.Title)
		cleaned[i] = doc
	}
	docs = cleaned

	if err := v.validator.Validate(ctx, docs); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.BulkImport(ctx, session, docs)
}

func (v *NoteValidationService) ExportAll(ctx context.Context, session *Session) ([]models.NoteDocument, error) {
	return v.inner.ExportAll(ctx, session)
}
