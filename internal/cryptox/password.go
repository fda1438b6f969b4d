package cryptox

import (
	"crypto/sha256"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations trades derivation cost against interactive latency.
// The wire format does not pin the count, so changing it breaks old
// envelopes; bump only together with a schema version change.
const pbkdf2Iterations = 4096

// PasswordCipher seals content under a password-derived key
// (PBKDF2-SHA256, 256-bit key, random salt and nonce).
type PasswordCipher struct {
	Password []byte
}

func (PasswordCipher) Method() Method { return MethodPassword }

func (c PasswordCipher) Seal(plaintext []byte) ([]byte, Envelope, error) {
	salt := common.GenerateRandByteArray(saltSize)
	nonce := common.GenerateRandByteArray(nonceSize)

	key := passwordKey(c.Password, salt)
	defer common.WipeByteArray(key)

	ciphertext, err := seal(key, nonce, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("password seal: %w", err)
	}

	return ciphertext, PasswordEnvelope{Salt: salt, IV: nonce}, nil
}

// OpenPassword reverses a password-sealed ciphertext. A wrong password or a
// corrupted ciphertext both surface as ErrInvalidPassword; the caller may
// re-prompt and try again.
func OpenPassword(ciphertext []byte, env PasswordEnvelope, password []byte) ([]byte, error) {
	key := passwordKey(password, env.Salt)
	defer common.WipeByteArray(key)

	plaintext, err := open(key, env.IV, ciphertext)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plaintext, nil
}

func passwordKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, pbkdf2Iterations, keySize, sha256.New)
}
