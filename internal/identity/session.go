package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession is returned when no login session is available.
	ErrNoSession = errors.New("no active session")

	// ErrMissingClaim is returned when the session token lacks a required
	// identity claim.
	ErrMissingClaim = errors.New("missing identity claim")
)

// sessionClaims are the identity claims the ledger backend puts into its
// access tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
	Handle         string `json:"handle"`
	PaymentAddress string `json:"paymentAddress"`
}

// SessionProvider reads identity attributes from a bearer access token.
// The token's signature is the server's concern; on the client the token is
// only a claims carrier, so it is parsed without verification.
type SessionProvider struct {
	token  string
	claims sessionClaims
}

// NewSessionProvider parses the access token and returns a provider over
// its claims.
func NewSessionProvider(accessToken string) (*SessionProvider, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}

	var claims sessionClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	return &SessionProvider{token: accessToken, claims: claims}, nil
}

func (p *SessionProvider) Handle() (string, error) {
	if p.claims.Handle == "" {
		return "", ErrMissingClaim
	}
	return p.claims.Handle, nil
}

func (p *SessionProvider) CredentialPrefix(n int) (string, error) {
	if n <= 0 || n > len(p.token) {
		n = len(p.token)
	}
	return p.token[:n], nil
}

func (p *SessionProvider) PaymentAddress() (string, error) {
	if p.claims.PaymentAddress == "" {
		return "", ErrMissingClaim
	}
	return p.claims.PaymentAddress, nil
}
