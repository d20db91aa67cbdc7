// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/app"
	"github.com/MKhiriev/atmost-notes/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unknown user", err: fmt.Errorf("error finding account: %w", store.ErrAccountNotFound), want: app.MsgUserNotFound},
		{name: "wrong password", err: ErrWrongPassword, want: app.MsgIncorrectPassword},
		{name: "wrong current password", err: ErrWrongCurrentPassword, want: app.MsgIncorrectCurrentPassword},
		{name: "mismatch", err: ErrPasswordMismatch, want: app.MsgPasswordsDoNotMatch},
		{name: "duplicate", err: fmt.Errorf("wrapped: %w", store.ErrUsernameAlreadyExists), want: app.MsgUsernameAlreadyExists},
		{name: "invalid input", err: ErrInvalidDataProvided, want: app.MsgInvalidDataProvided},
		{name: "not logged in", err: ErrNotLoggedIn, want: app.MsgNotLoggedIn},
		{name: "note not found", err: store.ErrNoteNotFound, want: app.MsgNoteNotFound},
		{name: "nothing to summarize", err: ErrNoNoteToSummarize, want: app.MsgNoNoteToSummarize},
		{name: "nothing to suggest", err: ErrNoNoteForSuggestions, want: app.MsgNoNoteForSuggestions},
		{name: "disabled", err: ErrAssistantDisabled, want: app.MsgAssistantDisabled},
		{name: "busy", err: ErrAssistantBusy, want: app.MsgAssistantBusy},
		{
			name: "gateway",
			err:  &adapter.GatewayError{Message: "Error: Unable to get AI response. quota", Err: adapter.ErrTooManyRequests},
			want: "Error: Unable to get AI response. quota",
		},
		{name: "storage failure", err: errors.New("disk I/O error"), want: app.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
