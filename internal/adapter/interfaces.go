// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote text-generation API
// behind the AI writing assistant.
//
// The primary abstraction is [AssistantAdapter], which decouples the service
// layer from the concrete provider. The package ships a Gemini REST
// implementation ([NewGeminiAdapter]).
//
// Every failure is reported as a [*GatewayError] carrying the user-facing
// message. HTTP statuses are additionally mapped to sentinel values by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401
// and 403).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/assistant_adapter_mock.go -package=mock

// AssistantAdapter sends a single prompt to the text-generation API and
// returns the generated text. Calls are synchronous and independent: no
// conversation history, no retries, no streaming.
type AssistantAdapter interface {
	// Generate returns the model's answer to prompt with literal asterisks
	// removed. Any transport, status or decoding failure yields a
	// [*GatewayError].
	Generate(ctx context.Context, prompt string) (string, error)
}
