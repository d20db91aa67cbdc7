// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, in-memory DSN or a malformed import pattern).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAssistantConfigs indicates invalid assistant settings
	// (for example, missing endpoint, model or request timeout).
	ErrInvalidAssistantConfigs = errors.New("invalid assistant configuration")
	// ErrInvalidSecurityConfigs indicates zero password hashing parameters.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidUIConfigs indicates invalid presentation defaults
	// (for example, an unknown theme name).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
