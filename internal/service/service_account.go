// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/crypto"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/MKhiriev/atmost-notes/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// accountRepository persists accounts.
	accountRepository store.AccountRepository

	// hasher produces and checks password digests.
	hasher crypto.PasswordHasher

	// ui supplies the defaults of every new session.
	ui config.UI

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over accountRepository.
func NewAccountService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, ui config.UI, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		ui:                ui,
		logger:            logger,
	}
}

// Register hashes the password, persists the account and opens a session.
// The plaintext password never reaches the repository.
func (a *accountService) Register(ctx context.Context, username, password string, image []byte) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidDataProvided
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Err(err).Str("func", "*accountService.Register").Msg("error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := models.Account{
		Username:     username,
		PasswordHash: digest,
		ProfileImage: image,
	}

	account.ID, err = a.accountRepository.Create(ctx, account)
	if err != nil {
		a.logger.Err(err).Str("func", "*accountService.Register").Str("username", username).Msg("account creation ended with error")
		return nil, fmt.Errorf("account creation ended with error: %w", err)
	}

	session := newSession(account, a.ui)
	a.logger.Info().Str("session", session.ID).Int64("account_id", account.ID).Msg("account registered")

	return session, nil
}

// Login looks the account up by username and verifies the password.
//
// Returns:
//   - store.ErrAccountNotFound if no account has this username.
//   - ErrWrongPassword if the password does not match.
//
// A digest that NeedsRehash is replaced after a successful verification. A
// failed upgrade is logged and does not fail the login.
func (a *accountService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error finding account: %w", err)
	}

	if err = a.verify(password, account.PasswordHash); err != nil {
		a.logger.Warn().Str("func", "*accountService.Login").Int64("account_id", account.ID).Msg("wrong password")
		return nil, err
	}

	if a.hasher.NeedsRehash(account.PasswordHash) {
		a.rehash(ctx, account.ID, password)
	}

	session := newSession(account, a.ui)
	a.logger.Info().Str("session", session.ID).Int64("account_id", account.ID).Msg("logged in")

	return session, nil
}

func (a *accountService) ChangeUsername(ctx context.Context, session *Session, username string) error {
	if err := session.authorize(); err != nil {
		return err
	}
	if username == "" {
		return ErrInvalidDataProvided
	}

	if err := a.accountRepository.UpdateUsername(ctx, session.AccountID, username); err != nil {
		return fmt.Errorf("error changing username: %w", err)
	}

	session.Username = username
	return nil
}

// ChangePassword checks oldPassword against the stored digest before looking
// at the confirmation, so a wrong old password is reported even when the new
// passwords also differ.
func (a *accountService) ChangePassword(ctx context.Context, session *Session, oldPassword, newPassword, confirmation string) error {
	if err := session.authorize(); err != nil {
		return err
	}

	account, err := a.accountRepository.FindByID(ctx, session.AccountID)
	if err != nil {
		return fmt.Errorf("error finding account: %w", err)
	}

	if err = a.verify(oldPassword, account.PasswordHash); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return ErrWrongCurrentPassword
		}
		return err
	}

	if newPassword != confirmation {
		return ErrPasswordMismatch
	}
	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	digest, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err = a.accountRepository.UpdatePasswordHash(ctx, session.AccountID, digest); err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}

	a.logger.Info().Str("session", session.ID).Msg("password changed")
	return nil
}

func (a *accountService) ChangeProfileImage(ctx context.Context, session *Session, image []byte) error {
	if err := session.authorize(); err != nil {
		return err
	}
	if len(image) == 0 {
		return ErrInvalidDataProvided
	}

	if err := a.accountRepository.UpdateProfileImage(ctx, session.AccountID, image); err != nil {
		return fmt.Errorf("error changing profile image: %w", err)
	}

	session.HasProfileImage = true
	return nil
}

// verify maps a non-matching password to ErrWrongPassword. A malformed stored
// digest is an internal error, not a wrong password.
func (a *accountService) verify(password, digest string) error {
	ok, err := a.hasher.Verify(password, digest)
	if err != nil {
		a.logger.Err(err).Str("func", "*accountService.verify").Msg("stored digest cannot be verified")
		return fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return ErrWrongPassword
	}
	return nil
}

func (a *accountService) rehash(ctx context.Context, accountID int64, password string) {
	digest, err := a.hasher.Hash(password)
	if err == nil {
		err = a.accountRepository.UpdatePasswordHash(ctx, accountID, digest)
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*accountService.rehash").Int64("account_id", accountID).Msg("password digest upgrade failed")
		return
	}
	a.logger.Info().Int64("account_id", accountID).Msg("password digest upgraded")
}
