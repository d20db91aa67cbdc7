// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{noteRepository: noteRepository, logger: logger}
}

func (n *noteService) Save(ctx context.Context, session *Session, title, body, tags string) (models.Note, error) {
	if err := session.authorize(); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		ID:      session.NoteID,
		OwnerID: session.AccountID,
		Title:   title,
		Body:    body,
		Tags:    tags,
	}

	if note.ID == 0 {
		id, err := n.noteRepository.Create(ctx, note)
		if err != nil {
			n.logger.Err(err).Str("func", "*noteService.Save").Str("session", session.ID).Msg("note creation ended with error")
			return models.Note{}, fmt.Errorf("error creating note: %w", err)
		}
		note.ID = id
		session.NoteID = id
		return note, nil
	}

	if err := n.noteRepository.Update(ctx, note); err != nil {
		n.logger.Err(err).Str("func", "*noteService.Save").Str("session", session.ID).Int64("note_id", note.ID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

func (n *noteService) Open(ctx context.Context, session *Session, noteID int64) (models.Note, error) {
	if err := session.authorize(); err != nil {
		return models.Note{}, err
	}

	note, err := n.noteRepository.GetByID(ctx, session.AccountID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error loading note: %w", err)
	}

	session.NoteID = note.ID
	return note, nil
}

func (n *noteService) OpenByTitle(ctx context.Context, session *Session, title string) (models.Note, error) {
	if err := session.authorize(); err != nil {
		return models.Note{}, err
	}

	note, err := n.noteRepository.GetByTitle(ctx, session.AccountID, title)
	if err != nil {
		return models.Note{}, fmt.Errorf("error loading note: %w", err)
	}

	session.NoteID = note.ID
	return note, nil
}

func (n *noteService) ListTitles(ctx context.Context, session *Session) ([]string, error) {
	headers, err := n.List(ctx, session)
	if err != nil {
		return nil, err
	}
	return titlesOf(headers), nil
}

func (n *noteService) Search(ctx context.Context, session *Session, query string) ([]string, error) {
	headers, err := n.SearchNotes(ctx, session, query)
	if err != nil {
		return nil, err
	}
	return titlesOf(headers), nil
}

func (n *noteService) List(ctx context.Context, session *Session) ([]models.NoteHeader, error) {
	if err := session.authorize(); err != nil {
		return nil, err
	}

	headers, err := n.noteRepository.List(ctx, session.AccountID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return headers, nil
}

func (n *noteService) SearchNotes(ctx context.Context, session *Session, query string) ([]models.NoteHeader, error) {
	if err := session.authorize(); err != nil {
		return nil, err
	}

	headers, err := n.noteRepository.Search(ctx, session.AccountID, query)
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	return headers, nil
}

func (n *noteService) BulkImport(ctx context.Context, session *Session, docs []models.NoteDocument) (int, error) {
	if err := session.authorize(); err != nil {
		return 0, err
	}

	count, err := n.noteRepository.BulkCreate(ctx, session.AccountID, docs)
	if err != nil {
		n.logger.Err(err).Str("func", "*noteService.BulkImport").Str("session", session.ID).Int("documents", len(docs)).Msg("bulk import ended with error")
		return 0, fmt.Errorf("error importing notes: %w", err)
	}
	return count, nil
}

func (n *noteService) ExportAll(ctx context.Context, session *Session) ([]models.NoteDocument, error) {
	if err := session.authorize(); err != nil {
		return nil, err
	}

	docs, err := n.noteRepository.Documents(ctx, session.AccountID)
	if err != nil {
		return nil, fmt.Errorf("error reading notes for export: %w", err)
	}
	return docs, nil
}

func titlesOf(headers []models.NoteHeader) []string {
	titles := make([]string, len(headers))
	for i, h := range headers {
		titles[i] = h.Title
	}
	return titles
}
