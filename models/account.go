// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account represents a registered user identity that owns zero or more notes.
// Sensitive fields must never be written to logs.
type Account struct {
	// ID is the storage-assigned identifier of the account. Immutable.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// Password carries the plaintext password on its way into the service
	// layer. It is never persisted and must be cleared before the account
	// reaches the store.
	Password string `json:"-"`

	// PasswordHash is the encoded one-way digest of the password.
	PasswordHash string `json:"-"`

	// ProfileImage holds arbitrary image bytes. Nil when no picture was set.
	ProfileImage []byte `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// HasProfileImage reports whether a profile picture is stored for the account.
func (a Account) HasProfileImage() bool {
	return len(a.ProfileImage) > 0
}
