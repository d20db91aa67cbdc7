// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Note is a titled, tagged rich-text document owned by exactly one account.
type Note struct {
	// ID is the storage-assigned identifier of the note. Immutable.
	ID int64 `json:"id"`

	// OwnerID references the owning Account.
	OwnerID int64 `json:"owner_id"`

	// Title is the display name of the note. Titles are not unique.
	Title string `json:"title"`

	// Body is the note content serialized as HTML markup.
	Body string `json:"body"`

	// Tags is a comma-separated list of free-form labels.
	Tags string `json:"tags"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// TagList splits Tags into trimmed, non-empty labels.
func (n Note) TagList() []string {
	parts := strings.Split(n.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// NoteHeader identifies a note in listings without carrying its content.
type NoteHeader struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// NoteDocument is the (title, body) pair exchanged by import and export.
type NoteDocument struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
