// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// application: context keys, session identifiers and the HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey stores the identifier of the logged-in account.
	AccountIDCtxKey = contextKey("accountID")

	// SessionIDCtxKey stores the identifier of the current UI session.
	SessionIDCtxKey = contextKey("sessionID")
)

// WithSession returns a copy of ctx carrying the session and account
// identifiers.
func WithSession(ctx context.Context, sessionID string, accountID int64) context.Context {
	ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetSessionIDFromContext retrieves the session identifier from the context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
