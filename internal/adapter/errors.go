// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// gatewayErrorPrefix opens every message shown to the user for a failed
// assistant call.
const gatewayErrorPrefix = "Error: Unable to get AI response."

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("assistant api unauthorized")
	ErrNotFound            = errors.New("model not found")
	ErrTooManyRequests     = errors.New("assistant api quota exceeded")
	ErrInternalServerError = errors.New("assistant api internal error")
	ErrServiceUnavailable  = errors.New("assistant api unavailable")

	ErrMissingAPIKey = errors.New("api key is not configured")
	ErrEmptyResponse = errors.New("response contains no text")
)

// GatewayError reports a failed assistant call. Message is ready to be shown
// to the user; Err keeps the underlying cause for [errors.Is].
type GatewayError struct {
	Message string
	Err     error
}

func newGatewayError(err error) *GatewayError {
	return &GatewayError{
		Message: gatewayErrorPrefix + " " + err.Error(),
		Err:     err,
	}
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
