// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/store"
)

// UserMessage translates an error returned by this package, the store or the
// assistant adapter into the text shown to the user. Unknown errors map to
// app.MsgInternalError; their details belong in the log.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var gatewayErr *adapter.GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Message
	}

	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, ErrWrongCurrentPassword):
		return app.MsgIncorrectCurrentPassword
	case errors.Is(err, ErrWrongPassword):
		return app.MsgIncorrectPassword
	case errors.Is(err, ErrPasswordMismatch):
		return app.MsgPasswordsDoNotMatch
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	case errors.Is(err, ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, store.ErrNoteNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, ErrNoNoteToSummarize):
		return app.MsgNoNoteToSummarize
	case errors.Is(err, ErrNoNoteForSuggestions), errors.Is(err, ErrNoNoteSelected):
		return app.MsgNoNoteForSuggestions
	case errors.Is(err, ErrAssistantDisabled):
		return app.MsgAssistantDisabled
	case errors.Is(err, ErrAssistantBusy):
		return app.MsgAssistantBusy
	}

	return app.MsgInternalError
}
