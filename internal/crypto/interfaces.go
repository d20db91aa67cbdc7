// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into one-way digests and checks
// passwords against stored digests. It knows nothing about storage or
// accounts.
//
// Digest format:
//
//	$argon2id$v=19$m=<memory KiB>,t=<time>,p=<threads>$<salt b64>$<key b64>
//
// Unsalted hex SHA-256 digests written by earlier releases are still
// verified so existing accounts keep working.
type PasswordHasher interface {
	// Hash derives a new Argon2id digest of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded digest. The
	// comparison is constant-time. A malformed digest yields
	// ErrMalformedDigest.
	Verify(password, encoded string) (bool, error)

	// NeedsRehash reports whether encoded was produced by a legacy scheme or
	// with parameters different from the hasher's current ones.
	NeedsRehash(encoded string) bool
}
