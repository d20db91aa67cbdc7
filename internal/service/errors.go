// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNotLoggedIn         = errors.New("not logged in")

	// ErrWrongPassword is returned when a password does not match the stored
	// digest. ErrWrongCurrentPassword is the variant raised by a password
	// change; it matches ErrWrongPassword under errors.Is.
	ErrWrongPassword        = errors.New("wrong password")
	ErrWrongCurrentPassword = fmt.Errorf("current password: %w", ErrWrongPassword)

	// ErrPasswordMismatch is returned when a new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	ErrAssistantDisabled = errors.New("assistant is disabled")
	ErrAssistantBusy     = errors.New("assistant request already in flight")

	// ErrNoNoteSelected is returned by assistant actions that need a saved
	// current note. The two variants below match it under errors.Is and
	// name the action that was refused.
	ErrNoNoteSelected       = errors.New("no note selected")
	ErrNoNoteToSummarize    = fmt.Errorf("summarize: %w", ErrNoNoteSelected)
	ErrNoNoteForSuggestions = fmt.Errorf("suggest: %w", ErrNoNoteSelected)
)
