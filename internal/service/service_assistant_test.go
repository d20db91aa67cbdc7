// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/mock"
	"github.com/MKhiriev/atmost-notes/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssistantSvc(t *testing.T, ctrl *gomock.Controller) (AssistantService, *mock.MockAssistantAdapter) {
	t.Helper()
	gateway := mock.NewMockAssistantAdapter(ctrl)
	return NewAssistantService(gateway, logger.Nop()), gateway
}

func TestAssistantService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)

	gateway.EXPECT().Generate(gomock.Any(), "Hello there").DoAndReturn(func(ctx context.Context, _ string) (string, error) {
		id, ok := utils.GetSessionIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, session.ID, id)
		return "General Kenobi", nil
	})

	answer, err := svc.Chat(context.Background(), session, "Hello there")
	require.NoError(t, err)
	assert.Equal(t, "General Kenobi", answer)
	assert.False(t, session.Busy())
}

func TestAssistantService_Chat_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAssistantSvc(t, ctrl)

	_, err := svc.Chat(context.Background(), loggedIn(1), "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAssistantService_Summarize_UsesPlainText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)
	session.NoteID = 5

	gateway.EXPECT().
		Generate(gomock.Any(), "Please summarize the following note:\n\nBuy milk\nand eggs").
		Return("Shopping list.", nil)

	answer, err := svc.Summarize(context.Background(), session, "<p>Buy <b>milk</b></p><p>and eggs</p>")
	require.NoError(t, err)
	assert.Equal(t, "Shopping list.", answer)
}

func TestAssistantService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)
	session.NoteID = 5

	gateway.EXPECT().
		Generate(gomock.Any(), "Based on the following note, please provide suggestions for improvement or expansion:\n\nDraft").
		Return("Add more detail.", nil)

	answer, err := svc.Suggest(context.Background(), session, "Draft")
	require.NoError(t, err)
	assert.Equal(t, "Add more detail.", answer)
}

func TestAssistantService_NoCurrentNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)

	_, err := svc.Summarize(context.Background(), session, "<p>x</p>")
	assert.ErrorIs(t, err, ErrNoNoteToSummarize)
	assert.ErrorIs(t, err, ErrNoNoteSelected)

	_, err = svc.Suggest(context.Background(), session, "<p>x</p>")
	assert.ErrorIs(t, err, ErrNoNoteForSuggestions)
	assert.ErrorIs(t, err, ErrNoNoteSelected)
}

func TestAssistantService_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)
	session.NoteID = 5
	session.AIEnabled = false

	_, err := svc.Chat(context.Background(), session, "hi")
	assert.ErrorIs(t, err, ErrAssistantDisabled)
	_, err = svc.Summarize(context.Background(), session, "x")
	assert.ErrorIs(t, err, ErrAssistantDisabled)
	_, err = svc.Suggest(context.Background(), session, "x")
	assert.ErrorIs(t, err, ErrAssistantDisabled)
}

func TestAssistantService_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAssistantSvc(t, ctrl)

	_, err := svc.Chat(context.Background(), &Session{AIEnabled: true}, "hi")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAssistantService_GatewayErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)
	gatewayErr := &adapter.GatewayError{Message: "Error: Unable to get AI response. boom", Err: adapter.ErrServiceUnavailable}

	gateway.EXPECT().Generate(gomock.Any(), "hi").Return("", gatewayErr)

	_, err := svc.Chat(context.Background(), session, "hi")
	var got *adapter.GatewayError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, gatewayErr.Message, got.Message)
	assert.False(t, session.Busy(), "busy flag is released after a failure")
}

func TestAssistantService_BusyRejectsOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, gateway := newTestAssistantSvc(t, ctrl)
	session := loggedIn(1)

	started := make(chan struct{})
	release := make(chan struct{})

	gateway.EXPECT().Generate(gomock.Any(), "first").DoAndReturn(func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "one", nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := svc.Chat(context.Background(), session, "first")
		done <- err
	}()

	<-started
	assert.True(t, session.Busy())

	_, err := svc.Chat(context.Background(), session, "second")
	assert.ErrorIs(t, err, ErrAssistantBusy)

	other := loggedIn(1)
	other.ID = "session-2"
	gateway.EXPECT().Generate(gomock.Any(), "parallel").Return("ok", nil)
	_, err = svc.Chat(context.Background(), other, "parallel")
	assert.NoError(t, err, "busy flag is per session")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, session.Busy())
}
