// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/atmost-notes/models"
)

const (
	FieldOwnerID = "owner_id"
	FieldNoteID  = "note_id"
	FieldTitle   = "title"
)

// NoteValidator checks notes and exchange documents. Titles may be empty and
// need not be unique; they only have to fit on one line.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NoteDocument:
		return v.validateDocument(value)
	case []models.NoteDocument:
		for _, doc := range value {
			if err := v.validateDocument(doc); err != nil {
				return err
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateNote checks owner and title by default. FieldNoteID is opt-in
// because a note has no identifier before its first save.
func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if note.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldNoteID:
			if note.ID <= 0 {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if !isSingleLine(note.Title) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateDocument(doc models.NoteDocument) error {
	if !isSingleLine(doc.Title) {
		return ErrInvalidTitle
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// SingleLineTitle joins the lines of title with spaces. Imported file names
// may carry line breaks that a note title cannot.
func SingleLineTitle(title string) string {
	return lineBreaks.Replace(title)
}

func isSingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}
