// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrInvalidUsername  = errors.New("username must not contain control characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidAccountID = errors.New("invalid account ID")

	ErrInvalidOwnerID = errors.New("invalid owner ID")
	ErrInvalidNoteID  = errors.New("invalid note ID")
	ErrInvalidTitle   = errors.New("title must not contain line breaks")
)
