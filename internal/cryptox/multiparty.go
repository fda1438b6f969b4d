package cryptox

import (
	"fmt"

	"github.com/dkrasnov/inkpress/internal/common"
)

// MultipartyCipher seals content under a random master key split into
// RequiredKeys XOR shares. Recovery needs every share (N-of-N), not a
// threshold: recoveryMaterial = master ⊕ share₁ ⊕ … ⊕ shareₙ, so folding
// the recovery material with all shares yields the master key back.
//
// This is key splitting, not Shamir's Secret Sharing. The K-of-N upgrade
// would change the external contract and is deliberately not done here.
type MultipartyCipher struct {
	RequiredKeys int
}

func (MultipartyCipher) Method() Method { return MethodMultiparty }

func (c MultipartyCipher) Seal(plaintext []byte) ([]byte, Envelope, error) {
	if c.RequiredKeys < 2 {
		return nil, nil, ErrTooFewShares
	}

	master := common.GenerateRandByteArray(keySize)
	defer common.WipeByteArray(master)
	nonce := common.GenerateRandByteArray(nonceSize)

	ciphertext, err := seal(master, nonce, plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("multiparty seal: %w", err)
	}

	shares := make([][]byte, c.RequiredKeys)
	for i := range shares {
		shares[i] = common.GenerateRandByteArray(keySize)
	}

	recovery, err := xorFold(master, shares)
	if err != nil {
		return nil, nil, err
	}

	return ciphertext, MultipartyEnvelope{
		RequiredKeys:     c.RequiredKeys,
		RecoveryMaterial: recovery,
		KeyShares:        shares,
		IV:               nonce,
	}, nil
}

// OpenMultiparty reverses a split-key ciphertext. Exactly RequiredKeys
// shares must be provided; anything else fails with InsufficientKeysError.
func OpenMultiparty(ciphertext []byte, env MultipartyEnvelope, providedShares [][]byte) ([]byte, error) {
	if len(providedShares) != env.RequiredKeys {
		return nil, &InsufficientKeysError{Have: len(providedShares), Need: env.RequiredKeys}
	}

	master, err := xorFold(env.RecoveryMaterial, providedShares)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(master)

	plaintext, err := open(master, env.IV, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("multiparty open: %w", err)
	}
	return plaintext, nil
}

// xorFold XORs base with every share. All inputs must be the same length.
func xorFold(base []byte, shares [][]byte) ([]byte, error) {
	out := make([]byte, len(base))
	copy(out, base)
	for _, share := range shares {
		if len(share) != len(base) {
			return nil, ErrShareLength
		}
		for i := range out {
			out[i] ^= share[i]
		}
	}
	return out, nil
}
