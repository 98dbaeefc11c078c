// Package password derives and verifies scrypt credential records.
//
// A record is stored as "scrypt:<salt hex>:<key hex>". Records are created once,
// replaced wholesale on password change and must never be logged.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Algorithm is the tag written in front of every credential record.
const Algorithm = "scrypt"

const (
	saltLen = 16
	keyLen  = 64
)

// Params are the scrypt cost parameters.
type Params struct {
	N int
	R int
	P int
}

// DefaultParams are the cost parameters existing credential records were produced with.
var DefaultParams = Params{N: 16384, R: 8, P: 1}

// Hasher hashes and verifies passwords with fixed scrypt parameters.
type Hasher struct {
	params Params
}

// NewHasher returns a Hasher using params.
func NewHasher(params Params) *Hasher {
	return &Hasher{params: params}
}

var defaultHasher = NewHasher(DefaultParams)

// Hash derives a credential record for password using DefaultParams.
func Hash(password string) (string, error) {
	return defaultHasher.Hash(password)
}

// Verify reports whether password matches stored using DefaultParams.
func Verify(password, stored string) bool {
	return defaultHasher.Verify(password, stored)
}

// Hash derives a fresh credential record for password with a random salt.
// Password length policy is the caller's concern.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, h.params.N, h.params.R, h.params.P, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return Algorithm + ":" + hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored credential record.
// Malformed records and unknown algorithms yield false, same as a wrong password.
func (h *Hasher) Verify(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 3 || parts[0] != Algorithm {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, h.params.N, h.params.R, h.params.P, len(want))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}
