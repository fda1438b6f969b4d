package auth

import (
	"crypto/subtle"

	"github.com/dkrasnov/inkpress/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// HashPassword derives an Argon2id hash of password under a fresh random salt.
// Both the hash and the salt are returned for storage.
func HashPassword(password []byte) (hash, salt []byte) {
	salt = common.GenerateRandByteArray(saltSize)
	hash = argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	return hash, salt
}

// VerifyPassword re-derives the hash of candidate under the stored salt and
// compares it to the stored hash in constant time.
func VerifyPassword(candidate, hash, salt []byte) bool {
	derived := argon2.IDKey(candidate, salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
