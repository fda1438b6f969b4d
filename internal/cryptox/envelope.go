// Package cryptox implements the four document-protection ciphers: password,
// identity, timelock and multiparty. Every cipher encrypts the payload with
// AES-256-GCM; they differ only in where the key comes from.
//
// Encryption is polymorphic over the Cipher interface. Decryption is
// heterogeneous (each method needs different secrets), so each variant has an
// explicit Open function taking the matching envelope.
package cryptox

import "time"

// Method tags an encryption envelope variant.
type Method string

const (
	MethodPassword   Method = "password"
	MethodIdentity   Method = "identity"
	MethodTimelock   Method = "timelock"
	MethodMultiparty Method = "multiparty"
)

// Envelope is the metadata needed to reverse one encryption: one variant per
// method, each carrying only its required fields. Envelopes never hold the
// plaintext key. Created once at encrypt time, immutable thereafter.
type Envelope interface {
	Method() Method
}

// PasswordEnvelope accompanies password-encrypted content.
type PasswordEnvelope struct {
	Salt []byte
	IV   []byte
}

func (PasswordEnvelope) Method() Method { return MethodPassword }

// IdentityEnvelope accompanies identity-encrypted content. No salt or IV is
// persisted: the key is always re-derivable from the same identity. The
// handle digest lets a reader detect an identity mismatch before attempting
// a decrypt.
type IdentityEnvelope struct {
	HandleDigest string
}

func (IdentityEnvelope) Method() Method { return MethodIdentity }

// TimelockEnvelope accompanies time-locked content.
type TimelockEnvelope struct {
	UnlockTime time.Time
}

func (TimelockEnvelope) Method() Method { return MethodTimelock }

// MultipartyEnvelope accompanies split-key content. Recovery of the master
// key requires RecoveryMaterial plus all RequiredKeys shares (N-of-N).
type MultipartyEnvelope struct {
	RequiredKeys     int
	RecoveryMaterial []byte
	KeyShares        [][]byte
	IV               []byte
}

func (MultipartyEnvelope) Method() Method { return MethodMultiparty }

// Cipher seals plaintext and produces the envelope describing how to
// reverse it.
type Cipher interface {
	Method() Method
	Seal(plaintext []byte) (ciphertext []byte, env Envelope, err error)
}
