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

// accountRepository is the SQLite-backed implementation of
// [AccountRepository]. It handles account creation, lookup and updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new row into "users" and returns the identifier assigned
// by SQLite.
//
// Error handling:
//   - username held by another row or UNIQUE constraint → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *accountRepository) Create(ctx context.Context, account models.Account) (int64, error) {
	log := logger.FromContext(ctx)

	if err := r.checkUsernameFree(ctx, "*accountRepository.Create", account.Username, 0); err != nil {
		return 0, err
	}

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*accountRepository.Create").Msg("username already exists")
			return 0, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error inserting account")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error reading inserted id")
		return 0, fmt.Errorf("error reading inserted account id: %w", err)
	}

	return id, nil
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.find(ctx, "*accountRepository.FindByUsername", sq.Eq{"username": username})
}

func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.find(ctx, "*accountRepository.FindByID", sq.Eq{"id": accountID})
}

func (r *accountRepository) find(ctx context.Context, funcName string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		account  models.Account
		username sql.NullString
		hash     sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &username, &hash, &account.ProfileImage)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	account.Username = username.String
	account.PasswordHash = hash.String

	return account, nil
}

// UpdateUsername renames the account.
//
// Error handling:
//   - username held by another row or UNIQUE constraint → [ErrUsernameAlreadyExists].
//   - No row updated → [ErrAccountNotFound].
func (r *accountRepository) UpdateUsername(ctx context.Context, accountID int64, username string) error {
	if err := r.checkUsernameFree(ctx, "*accountRepository.UpdateUsername", username, accountID); err != nil {
		return err
	}
	return r.update(ctx, "*accountRepository.UpdateUsername", accountID, "username", username)
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	return r.update(ctx, "*accountRepository.UpdatePasswordHash", accountID, "password", passwordHash)
}

func (r *accountRepository) UpdateProfileImage(ctx context.Context, accountID int64, image []byte) error {
	return r.update(ctx, "*accountRepository.UpdateProfileImage", accountID, "profile_pic", image)
}

func (r *accountRepository) update(ctx context.Context, funcName string, accountID int64, column string, value any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(accountID, column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", funcName).Int64("account_id", accountID).Msg("error updating account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("account_id", accountID).Msg("error reading affected rows")
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// checkUsernameFree returns [ErrUsernameAlreadyExists] when an account other
// than exceptID already uses username.
func (r *accountRepository) checkUsernameFree(ctx context.Context, funcName, username string, exceptID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUsernameTakenQuery(username, exceptID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", funcName).Msg("error checking username")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if count > 0 {
		log.Debug().Str("func", funcName).Msg("username already exists")
		return ErrUsernameAlreadyExists
	}

	return nil
}
