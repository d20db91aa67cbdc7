// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/atmost-notes/models"
)

// psql builds SQLite queries with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	accountColumns = []string{"id", "username", "password", "profile_pic"}
	noteColumns    = []string{"id", "user_id", "title", "content", "tags"}
)

// ── accounts ──────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(models.Account{}.TableName()).
		Columns("username", "password", "profile_pic").
		Values(account.Username, account.PasswordHash, account.ProfileImage).
		ToSql()
}

func buildSelectAccountQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

// buildUsernameTakenQuery counts other accounts holding username. Older
// database files may lack the unique index on users.username.
func buildUsernameTakenQuery(username string, exceptID int64) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"username": username}).
		Where(sq.NotEq{"id": exceptID}).
		ToSql()
}

func buildUpdateAccountQuery(accountID int64, column string, value any) (string, []any, error) {
	return psql.Update(models.Account{}.TableName()).
		Set(column, value).
		Where(sq.Eq{"id": accountID}).
		ToSql()
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(models.Note{}.TableName()).
		Columns("user_id", "title", "content", "tags").
		Values(note.OwnerID, note.Title, note.Body, note.Tags).
		ToSql()
}

func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Update(models.Note{}.TableName()).
		Set("title", note.Title).
		Set("content", note.Body).
		Set("tags", note.Tags).
		Where(sq.Eq{"id": note.ID, "user_id": note.OwnerID}).
		ToSql()
}

func buildSelectNoteQuery(ownerID int64, where sq.Eq) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildSelectNoteHeadersQuery(ownerID int64) (string, []any, error) {
	return psql.Select("id", "title").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id").
		ToSql()
}

// buildSearchNoteHeadersQuery matches query as a substring with instr, which
// unlike LIKE is case-sensitive and treats % and _ literally.
func buildSearchNoteHeadersQuery(ownerID int64, query string) (string, []any, error) {
	return psql.Select("id", "title").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.Or{
			sq.Expr("instr(COALESCE(title, ''), ?) > 0", query),
			sq.Expr("instr(COALESCE(content, ''), ?) > 0", query),
			sq.Expr("instr(COALESCE(tags, ''), ?) > 0", query),
		}).
		OrderBy("id").
		ToSql()
}

func buildSelectNoteDocumentsQuery(ownerID int64) (string, []any, error) {
	return psql.Select("title", "content").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id").
		ToSql()
}
