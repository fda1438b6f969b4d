package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/common"
)

// Identity is the stable attribute set a symmetric key is derived from:
// the provider handle, the payment address, and a prefix of the bearer
// credential. The full credential is never used and never stored; the
// caller passes these attributes per call.
type Identity struct {
	Handle           string
	PaymentAddress   string
	CredentialPrefix string
}

// key derives the deterministic symmetric key for this identity.
func (id Identity) key() []byte {
	sum := sha256.Sum256([]byte(id.Handle + "_" + id.PaymentAddress + "_" + id.CredentialPrefix))
	return sum[:]
}

// HandleDigest returns the hex SHA-256 digest of a provider handle, stored
// in the envelope as an integrity tag for mismatch detection.
func HandleDigest(handle string) string {
	sum := sha256.Sum256([]byte(handle))
	return hex.EncodeToString(sum[:])
}

// IdentityCipher seals content under a key derived from the caller's
// identity. No salt or IV is persisted; the same identity always re-derives
// the same key and nonce.
type IdentityCipher struct {
	Identity Identity
}

func (IdentityCipher) Method() Method { return MethodIdentity }

func (c IdentityCipher) Seal(plaintext []byte) ([]byte, Envelope, error) {
	key := c.Identity.key()
	defer common.WipeByteArray(key)

	ciphertext, err := seal(key, derivedNonce(key, "inkpress.identity"), plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("identity seal: %w", err)
	}

	return ciphertext, IdentityEnvelope{HandleDigest: HandleDigest(c.Identity.Handle)}, nil
}

// OpenIdentity reverses an identity-sealed ciphertext. Any identity other
// than the encrypting one fails with ErrIdentityMismatch, detected either
// by the stored handle digest or by the authentication tag.
func OpenIdentity(ciphertext []byte, env IdentityEnvelope, id Identity) ([]byte, error) {
	if env.HandleDigest != "" && env.HandleDigest != HandleDigest(id.Handle) {
		return nil, ErrIdentityMismatch
	}

	key := id.key()
	defer common.WipeByteArray(key)

	plaintext, err := open(key, derivedNonce(key, "inkpress.identity"), ciphertext)
	if err != nil {
		return nil, ErrIdentityMismatch
	}
	return plaintext, nil
}
