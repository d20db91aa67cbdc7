// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/atmost-notes/internal/config"
)

const (
	argonSaltLen = 16
	argonKeyLen  = 32

	legacyDigestLen = sha256.Size * 2
)

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per machine through configuration.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters from cfg. The defaults follow OWASP (2024): 1 iteration,
// 64 MiB, 4 threads.
func NewPasswordHasher(cfg config.Security) PasswordHasher {
	return &argon2Hasher{
		argonTime:    cfg.HashTime,
		argonMemory:  cfg.HashMemoryKiB,
		argonThreads: cfg.HashThreads,
	}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.argonMemory, h.argonTime, h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	if isLegacyDigest(encoded) {
		sum := sha256.Sum256([]byte(password))
		want := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(encoded))) == 1, nil
	}

	p, salt, key, err := decodeArgon2Digest(encoded)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func (h *argon2Hasher) NeedsRehash(encoded string) bool {
	p, _, _, err := decodeArgon2Digest(encoded)
	if err != nil {
		return true
	}
	return p.time != h.argonTime || p.memory != h.argonMemory || p.threads != h.argonThreads
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeArgon2Digest splits "$argon2id$v=19$m=..,t=..,p=..$salt$key".
func decodeArgon2Digest(encoded string) (argon2Params, []byte, []byte, error) {
	var p argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
	if version != argon2.Version {
		return p, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
	if p.time == 0 || p.threads == 0 {
		return p, nil, nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedDigest
	}

	return p, salt, key, nil
}

func isLegacyDigest(encoded string) bool {
	if len(encoded) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(encoded)
	return err == nil
}
