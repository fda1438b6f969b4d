// Package services contains application services for the writer CLI:
// authentication and session housekeeping, publishing with cost quoting and
// an offline outbox, and reading with unlock evaluation.
package services

import (
	"context"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/client/client"
	"github.com/dkrasnov/inkpress/internal/client/repositories/session"
)

// session repository keys
const (
	sessionKeyAccessToken = "access_token"
	sessionKeyHandle      = "handle"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new author account on the server.
//   - Login: authenticate and persist the session locally.
//   - RestoreSession: load a previously stored access token into the client.
//   - Logout: wipe the stored session.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, handle string, password []byte, paymentAddress string) error
	Login(ctx context.Context, handle string, password []byte) error
	RestoreSession(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and a
// local session repository.
type authService struct {
	client      client.Client
	sessionRepo session.Repository
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client client.Client, sessionRepo session.Repository) AuthService {
	return &authService{client: client, sessionRepo: sessionRepo}
}

// Register creates a new account on the server. The password travels over
// the transport and is hashed server side.
func (a *authService) Register(ctx context.Context, handle string, password []byte, paymentAddress string) error {
	_, err := a.client.Register(ctx, handle, string(password), paymentAddress)
	if err != nil {
		return err
	}
	return nil
}

// Login authenticates against the server and persists the session locally
// so the next start can pick it up without re-prompting.
func (a *authService) Login(ctx context.Context, handle string, password []byte) error {
	token, err := a.client.Login(ctx, handle, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.sessionRepo.Set(ctx, sessionKeyAccessToken, []byte(token)); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	if err := a.sessionRepo.Set(ctx, sessionKeyHandle, []byte(handle)); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// RestoreSession loads a stored access token into the client and returns
// the stored handle. Returns client.ErrLocalDataNotAvailable when no
// session is stored.
func (a *authService) RestoreSession(ctx context.Context) (string, error) {
	token, err := a.sessionRepo.Get(ctx, sessionKeyAccessToken)
	if err != nil {
		return "", err
	}
	if len(token) == 0 {
		return "", client.ErrLocalDataNotAvailable
	}
	handle, err := a.sessionRepo.Get(ctx, sessionKeyHandle)
	if err != nil {
		return "", err
	}
	a.client.SetAccessToken(string(token))
	return string(handle), nil
}

// Logout wipes the locally stored session.
func (a *authService) Logout(ctx context.Context) error {
	a.client.SetAccessToken("")
	return a.sessionRepo.Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
