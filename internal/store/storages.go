// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	AccountRepository AccountRepository
	NoteRepository    NoteRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the account and note repositories to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		NoteRepository:    NewNoteRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
