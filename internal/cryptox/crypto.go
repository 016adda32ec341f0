// Package cryptox hashes and verifies account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/edvora/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing them invalidates every stored hash, so they
// are fixed rather than configurable.
const (
	SaltSize    = 16
	KeySize     = 32
	argonTime   = 1
	argonMemory = 64 * 1024
	argonLanes  = 4
)

// NewSalt returns a fresh random salt for one password record.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored verifier for password under salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonLanes, KeySize)
}

// VerifyPassword re-derives the hash for candidate and compares it with
// verifier in constant time.
func VerifyPassword(candidate []byte, salt []byte, verifier []byte) bool {
	derived := HashPassword(candidate, salt)
	defer common.WipeByteArray(derived)
	return subtle.ConstantTimeCompare(derived, verifier) == 1
}
