// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) Create(ctx context.Context, note models.Note) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Int64("owner_id", note.OwnerID).
			Msg("failed to insert note")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("failed to read inserted note id")
		return 0, fmt.Errorf("error reading inserted note id: %w", err)
	}

	return id, nil
}

func (n *noteRepository) Update(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Int64("owner_id", note.OwnerID).
			Int64("note_id", note.ID).
			Msg("failed to update note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Msg("failed to read affected rows")
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	// either missing or owned by someone else
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (n *noteRepository) GetByTitle(ctx context.Context, ownerID int64, title string) (models.Note, error) {
	return n.getOne(ctx, "noteRepository.GetByTitle", ownerID, sq.Eq{"title": title})
}

func (n *noteRepository) GetByID(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return n.getOne(ctx, "noteRepository.GetByID", ownerID, sq.Eq{"id": noteID})
}

func (n *noteRepository) getOne(ctx context.Context, funcName string, ownerID int64, where sq.Eq) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(ownerID, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		note              models.Note
		title, body, tags sql.NullString
	)
	err = n.DB.QueryRowContext(ctx, query, args...).
		Scan(&note.ID, &note.OwnerID, &title, &body, &tags)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	note.Title, note.Body, note.Tags = title.String, body.String, tags.String

	return note, nil
}

func (n *noteRepository) List(ctx context.Context, ownerID int64) ([]models.NoteHeader, error) {
	query, args, err := buildSelectNoteHeadersQuery(ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryHeaders(ctx, "noteRepository.List", ownerID, query, args)
}

func (n *noteRepository) Search(ctx context.Context, ownerID int64, query string) ([]models.NoteHeader, error) {
	sqlQuery, args, err := buildSearchNoteHeadersQuery(ownerID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.Search").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.queryHeaders(ctx, "noteRepository.Search", ownerID, sqlQuery, args)
}

func (n *noteRepository) queryHeaders(ctx context.Context, funcName string, ownerID int64, query string, args []any) ([]models.NoteHeader, error) {
	log := logger.FromContext(ctx)

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("failed to execute query for note headers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	headers := make([]models.NoteHeader, 0)
	for rows.Next() {
		var (
			header models.NoteHeader
			title  sql.NullString
		)
		if scanErr := rows.Scan(&header.ID, &title); scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Int64("owner_id", ownerID).
				Msg("failed to scan note header row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		header.Title = title.String
		headers = append(headers, header)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note header rows: %w", rowsErr)
	}

	return headers, nil
}

// BulkCreate inserts every document inside one transaction. Either all
// documents are stored or none.
func (n *noteRepository) BulkCreate(ctx context.Context, ownerID int64, docs []models.NoteDocument) (int, error) {
	log := logger.FromContext(ctx)

	if len(docs) == 0 {
		return 0, nil
	}

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.BulkCreate").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, doc := range docs {
		query, args, buildErr := buildInsertNoteQuery(models.Note{OwnerID: ownerID, Title: doc.Title, Body: doc.Body})
		if buildErr != nil {
			log.Err(buildErr).Str("func", "noteRepository.BulkCreate").Msg("error building query")
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "noteRepository.BulkCreate").
				Int64("owner_id", ownerID).
				Int("index", i).
				Msg("failed to insert imported note")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteRepository.BulkCreate").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return len(docs), nil
}

func (n *noteRepository) Documents(ctx context.Context, ownerID int64) ([]models.NoteDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteDocumentsQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Documents").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Documents").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for note documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.NoteDocument, 0)
	for rows.Next() {
		var title, body sql.NullString
		if scanErr := rows.Scan(&title, &body); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.Documents").
				Int64("owner_id", ownerID).
				Msg("failed to scan note document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		docs = append(docs, models.NoteDocument{Title: title.String, Body: body.String})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.Documents").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note document rows: %w", rowsErr)
	}

	return docs, nil
}
