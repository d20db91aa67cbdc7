// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestExchange wires the exchange service to a real SQLite file and
// returns a session of a freshly created account.
func newTestExchange(t *testing.T, pattern string) (ExchangeService, NoteService, *Session) {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{
		DB: config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	id, err := storages.AccountRepository.Create(ctx, models.Account{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)

	notes := NewNoteService(storages.NoteRepository, logger.Nop())
	exchange := NewExchangeService(notes, config.Files{ImportPattern: pattern}, logger.Nop())

	return exchange, notes, loggedIn(id)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExchangeService_Export(t *testing.T) {
	exchange, notes, session := newTestExchange(t, "*.html")
	ctx := context.Background()

	_, err := notes.Save(ctx, session, "Groceries", "<p>milk</p>", "home")
	require.NoError(t, err)
	session.NewNote()
	_, err = notes.Save(ctx, session, "a/b", "<p>slash</p>", "")
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Groceries.html"), "stale")

	n, err := exchange.Export(ctx, session, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := os.ReadFile(filepath.Join(dir, "Groceries.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>milk</p>", string(content), "existing files are overwritten")

	content, err = os.ReadFile(filepath.Join(dir, "a_b.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>slash</p>", string(content))
}

func TestExchangeService_ExportNothing(t *testing.T) {
	exchange, _, session := newTestExchange(t, "*.html")

	dir := t.TempDir()
	n, err := exchange.Export(context.Background(), session, dir)
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExchangeService_Import(t *testing.T) {
	exchange, notes, session := newTestExchange(t, "*.html")
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.html"), "<p>second</p>")
	writeFile(t, filepath.Join(dir, "a.html"), "<p>first</p>")
	writeFile(t, filepath.Join(dir, "readme.txt"), "ignored")
	writeFile(t, filepath.Join(dir, "sub", "c.html"), "<p>nested</p>")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.html"), 0o755))

	n, err := exchange.Import(ctx, session, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	titles, err := notes.ListTitles(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles)

	note, err := notes.OpenByTitle(ctx, session, "a")
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>", note.Body)
	assert.Empty(t, note.Tags)
}

func TestExchangeService_ImportRecursivePattern(t *testing.T) {
	exchange, notes, session := newTestExchange(t, "**/*.html")
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "<p>top</p>")
	writeFile(t, filepath.Join(dir, "sub", "deep", "c.html"), "<p>nested</p>")

	n, err := exchange.Import(ctx, session, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	titles, err := notes.ListTitles(ctx, session)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, titles)
}

func TestExchangeService_ImportTwiceDuplicates(t *testing.T) {
	exchange, notes, session := newTestExchange(t, "*.html")
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.html"), "<p>x</p>")

	for range 2 {
		_, err := exchange.Import(ctx, session, dir)
		require.NoError(t, err)
	}

	titles, err := notes.ListTitles(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, titles)
}

func TestExchangeService_RoundTrip(t *testing.T) {
	exchange, notes, session := newTestExchange(t, "*.html")
	ctx := context.Background()

	_, err := notes.Save(ctx, session, "Plan", "<p><b>Q3</b> goals</p>", "work")
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = exchange.Export(ctx, session, dir)
	require.NoError(t, err)

	other, otherNotes, otherSession := newTestExchange(t, "*.html")
	_, err = other.Import(ctx, otherSession, dir)
	require.NoError(t, err)

	note, err := otherNotes.OpenByTitle(ctx, otherSession, "Plan")
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Q3</b> goals</p>", note.Body)
	assert.Empty(t, note.Tags, "tags are not part of the exchange format")
}

func TestExchangeService_Errors(t *testing.T) {
	exchange, _, session := newTestExchange(t, "*.html")
	ctx := context.Background()

	_, err := exchange.Export(ctx, session, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = exchange.Import(ctx, session, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "note.html")
	writeFile(t, file, "x")
	_, err = exchange.Import(ctx, session, file)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = exchange.Export(ctx, &Session{}, t.TempDir())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = exchange.Import(ctx, &Session{}, t.TempDir())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Groceries.html", exportFileName("Groceries"))
	assert.Equal(t, "a_b_c.html", exportFileName(`a/b\c`))
	assert.Equal(t, ".html", exportFileName(""))
}

func TestImportTitle(t *testing.T) {
	assert.Equal(t, "Groceries", importTitle("Groceries.html"))
	assert.Equal(t, "c", importTitle("sub/c.html"))
	assert.Equal(t, "archive.tar", importTitle("archive.tar.html"))
	assert.Equal(t, "", importTitle(".html"))
}

func TestExchangeService_ImportFileNameWithLineBreak(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.Storage{
		DB: config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	id, err := storages.AccountRepository.Create(ctx, models.Account{Username: "alice", PasswordHash: "x"})
	require.NoError(t, err)
	session := loggedIn(id)

	notes := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger.Nop()))
	exchange := NewExchangeService(notes, config.Files{ImportPattern: "*.html"}, logger.Nop())

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "<p>first</p>")
	writeFile(t, filepath.Join(dir, "two\nlines.html"), "<p>second</p>")

	n, err := exchange.Import(ctx, session, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	titles, err := notes.ListTitles(ctx, session)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "two lines"}, titles)
}
