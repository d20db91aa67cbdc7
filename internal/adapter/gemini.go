// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/atmost-notes/internal/config"
	"github.com/MKhiriev/atmost-notes/internal/logger"
	"github.com/MKhiriev/atmost-notes/internal/utils"
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type geminiAdapter struct {
	client *utils.HTTPClient

	model  string
	apiKey string

	logger *logger.Logger
}

// NewGeminiAdapter constructs the Gemini REST implementation of
// [AssistantAdapter]. It normalises and validates cfg.URL, then configures the
// underlying HTTP client with the resolved base URL and cfg.RequestTimeout.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewGeminiAdapter(cfg config.Assistant, logger *logger.Logger) (AssistantAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid assistant url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &geminiAdapter{
		client: client,
		model:  strings.TrimSpace(cfg.Model),
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Generate implements [AssistantAdapter]. It POSTs the prompt as a single
// user turn to /{model}:generateContent and returns the text of the first
// part of the first candidate.
func (g *geminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	log := requestLogger(ctx)

	if g.apiKey == "" {
		return "", newGatewayError(ErrMissingAPIKey)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetQueryParam("key", g.apiKey).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		Post("/{model}:generateContent")
	if err != nil {
		log.Err(err).Str("func", "*geminiAdapter.Generate").Msg("generate request failed")
		return "", newGatewayError(fmt.Errorf("generate request: %w", redactKey(err, g.apiKey)))
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*geminiAdapter.Generate").Int("status", resp.StatusCode()).Msg("assistant api returned an error")
		return "", newGatewayError(err)
	}

	var out generateContentResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		log.Err(err).Str("func", "*geminiAdapter.Generate").Msg("error decoding generate response")
		return "", newGatewayError(fmt.Errorf("decode generate response: %w", err))
	}

	text, err := out.text()
	if err != nil {
		return "", newGatewayError(err)
	}

	log.Debug().Str("func", "*geminiAdapter.Generate").Int("chars", len(text)).Msg("assistant answered")
	return stripAsterisks(text), nil
}

// requestLogger tags the context logger with the session that made the call.
func requestLogger(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx).With()
	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		log = log.Str("session", sessionID)
	}
	if accountID, ok := utils.GetAccountIDFromContext(ctx); ok {
		log = log.Int64("account_id", accountID)
	}
	return &logger.Logger{Logger: log.Logger()}
}

func (r generateContentResponse) text() (string, error) {
	if r.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyResponse, r.PromptFeedback.BlockReason)
	}
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return r.Candidates[0].Content.Parts[0].Text, nil
}

// stripAsterisks drops markdown emphasis markers the model likes to emit.
func stripAsterisks(s string) string {
	return strings.ReplaceAll(s, "*", "")
}

// redactKey keeps the API key out of error messages; transport errors embed
// the full request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), key, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
