// Package identity defines the identity-provider contract the encryption
// subsystem depends on, plus an implementation backed by the stored login
// session. The bearer credential is consumed per call and never cached
// beyond it.
package identity

import "github.com/dkrasnov/inkpress/internal/cryptox"

// Provider supplies the stable identity attributes used for identity-bound
// encryption and for payment routing.
type Provider interface {
	// Handle returns the stable user handle.
	Handle() (string, error)

	// CredentialPrefix returns the first n characters of the bearer
	// credential. The full credential is never exposed.
	CredentialPrefix(n int) (string, error)

	// PaymentAddress returns the address payments to this user go to.
	PaymentAddress() (string, error)
}

// CredentialPrefixLen is how much of the bearer credential participates in
// key derivation. Matches the digest input of the original scheme.
const CredentialPrefixLen = 32

// CipherIdentity gathers the three attributes from a provider into the
// value the identity cipher derives its key from.
func CipherIdentity(p Provider) (cryptox.Identity, error) {
	handle, err := p.Handle()
	if err != nil {
		return cryptox.Identity{}, err
	}
	addr, err := p.PaymentAddress()
	if err != nil {
		return cryptox.Identity{}, err
	}
	prefix, err := p.CredentialPrefix(CredentialPrefixLen)
	if err != nil {
		return cryptox.Identity{}, err
	}
	return cryptox.Identity{
		Handle:           handle,
		PaymentAddress:   addr,
		CredentialPrefix: prefix,
	}, nil
}
