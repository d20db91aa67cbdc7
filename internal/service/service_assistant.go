// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/adapter"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/markup"
)

const (
	summaryPrompt    = "Please summarize the following note:\n\n"
	suggestionPrompt = "Based on the following note, please provide suggestions for improvement or expansion:\n\n"
)

type assistantService struct {
	adapter adapter.AssistantAdapter
	logger  *logger.Logger
}

func NewAssistantService(assistantAdapter adapter.AssistantAdapter, logger *logger.Logger) AssistantService {
	return &assistantService{adapter: assistantAdapter, logger: logger}
}

func (a *assistantService) Chat(ctx context.Context, session *Session, message string) (string, error) {
	if err := a.check(session); err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrInvalidDataProvided
	}
	return a.generate(ctx, session, message)
}

// Summarize sends the plain text of body, not its markup.
func (a *assistantService) Summarize(ctx context.Context, session *Session, body string) (string, error) {
	if err := a.check(session); err != nil {
		return "", err
	}
	if session.NoteID == 0 {
		return "", ErrNoNoteToSummarize
	}
	return a.generate(ctx, session, summaryPrompt+markup.PlainText(body))
}

func (a *assistantService) Suggest(ctx context.Context, session *Session, body string) (string, error) {
	if err := a.check(session); err != nil {
		return "", err
	}
	if session.NoteID == 0 {
		return "", ErrNoNoteForSuggestions
	}
	return a.generate(ctx, session, suggestionPrompt+markup.PlainText(body))
}

func (a *assistantService) check(session *Session) error {
	if err := session.authorize(); err != nil {
		return err
	}
	if !session.AIEnabled {
		return ErrAssistantDisabled
	}
	return nil
}

// generate holds the session's busy flag for the duration of one request.
func (a *assistantService) generate(ctx context.Context, session *Session, prompt string) (string, error) {
	if !session.acquire() {
		return "", ErrAssistantBusy
	}
	defer session.release()

	answer, err := a.adapter.Generate(session.Context(ctx), prompt)
	if err != nil {
		a.logger.Err(err).Str("func", "*assistantService.generate").Str("session", session.ID).Msg("assistant request failed")
		return "", err
	}

	return answer, nil
}
