// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedDigest is returned when a stored digest matches neither the
	// Argon2id encoding nor the legacy SHA-256 hex form.
	ErrMalformedDigest = errors.New("malformed password digest")

	// ErrIncompatibleVersion is returned for Argon2 digests of another
	// algorithm version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
