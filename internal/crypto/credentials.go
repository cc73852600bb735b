// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the credential codec: password hashing and
// verification, signed session tokens, and password-reset secrets.
//
// All secret material (the token sign key, issuer, and lifetimes) is
// injected at construction from the application configuration; the package
// keeps no ambient global state.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to every password hash. Cost 10
// keeps hashing latency moderate while remaining resistant to brute force.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password.
// The transform is one-way; the plaintext is never stored.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// bcrypt's comparison is constant-time over the digest, so a wrong password
// and a malformed hash are indistinguishable by timing.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// NewResetSecret produces a random password-reset secret.
//
// It returns the plaintext secret, which is delivered to the user out of
// band (email) and never persisted, and its SHA-256 hex digest, which is the
// only form stored server-side.
func NewResetSecret() (plaintext string, storedHash string, err error) {
	raw := make([]byte, 20)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", "", err
	}

	plaintext = hex.EncodeToString(raw)
	return plaintext, HashResetSecret(plaintext), nil
}

// HashResetSecret returns the SHA-256 hex digest of a plaintext reset
// secret, matching the stored form produced by [NewResetSecret].
func HashResetSecret(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
