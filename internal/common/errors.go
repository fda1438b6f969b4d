// Package common contains shared constants, sentinel errors and small
// helpers used across inkpress components. Callers should match sentinel
// values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrBudgetExceeded is a confirmable warning: the quoted cost is above the
	// configured spending ceiling. Publishing may still proceed once the caller
	// confirms.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrBroadcastFailure wraps a failed or timed-out ledger broadcast. It is
	// propagated to the caller unmodified and never retried inside the core;
	// the package is retained locally for a later retry.
	ErrBroadcastFailure = errors.New("broadcast failure")

	// ErrPayloadMismatch is returned when an uploaded payload digest does not
	// match the digest announced at commit time.
	ErrPayloadMismatch = errors.New("payload digest mismatch")
)
