package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
)

const (
	keySize   = 32 // AES-256
	nonceSize = 12
	saltSize  = 16
)

func seal(key, nonce, plaintext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Seal(nil, nonce, plaintext, nil), nil
}

func open(key, nonce, ciphertext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// derivedNonce produces a deterministic nonce from a key and a domain label.
// Used by the identity and timelock ciphers, whose keys are themselves
// deterministic by contract: the envelope persists no IV, so the nonce must
// be recomputable. The key is single-purpose, which bounds the usual
// nonce-reuse concern; see the package notes on cooperative schemes.
func derivedNonce(key []byte, label string) []byte {
	h := sha256.New()
	h.Write([]byte(label))
	h.Write(key)
	return h.Sum(nil)[:nonceSize]
}
