// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/atmost-notes/internal/config"
)

// small parameters keep the tests fast
var testSecurity = config.Security{HashTime: 1, HashMemoryKiB: 1024, HashThreads: 1}

func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func TestHash_FormatAndRandomSalt(t *testing.T) {
	h := NewPasswordHasher(testSecurity)

	d1, err := h.Hash("secret123")
	require.NoError(t, err)
	d2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(d1, "$argon2id$v=19$m=1024,t=1,p=1$"), d1)
	assert.NotEqual(t, d1, d2, "same password must produce different digests")
	assert.NotContains(t, d1, "secret123")
}

func TestVerify_Argon2(t *testing.T) {
	h := NewPasswordHasher(testSecurity)

	digest, err := h.Hash("secret123")
	require.NoError(t, err)

	ok, err := h.Verify("secret123", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("Secret123", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerify_OtherParameters verifies that digests made with different
// parameters still verify, using the parameters encoded in the digest.
func TestVerify_OtherParameters(t *testing.T) {
	old := NewPasswordHasher(config.Security{HashTime: 2, HashMemoryKiB: 512, HashThreads: 2})
	current := NewPasswordHasher(testSecurity)

	digest, err := old.Hash("pw")
	require.NoError(t, err)

	ok, err := current.Verify("pw", digest)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, current.NeedsRehash(digest))
	assert.False(t, old.NeedsRehash(digest))
}

func TestVerify_Legacy(t *testing.T) {
	h := NewPasswordHasher(testSecurity)
	digest := legacyDigest("secret123")

	ok, err := h.Verify("secret123", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("secret123", strings.ToUpper(digest))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, h.NeedsRehash(digest))
}

func TestVerify_Malformed(t *testing.T) {
	h := NewPasswordHasher(testSecurity)

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "empty", encoded: "", wantErr: ErrMalformedDigest},
		{name: "plaintext", encoded: "secret123", wantErr: ErrMalformedDigest},
		{name: "other algorithm", encoded: "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedDigest},
		{name: "other version", encoded: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedDigest},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", wantErr: ErrMalformedDigest},
		{name: "zero threads", encoded: "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$a2V5", wantErr: ErrMalformedDigest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("secret123", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, h.NeedsRehash(tt.encoded))
		})
	}
}
