package cryptox

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPassword is returned when a password-derived key cannot
	// authenticate the ciphertext (wrong password or corrupted data).
	ErrInvalidPassword = errors.New("invalid password")

	// ErrIdentityMismatch is returned when an identity-derived decrypt is
	// attempted under a different identity than the one that encrypted.
	ErrIdentityMismatch = errors.New("identity mismatch")

	// ErrStillLocked is the sentinel behind StillLockedError.
	ErrStillLocked = errors.New("still locked")

	// ErrInsufficientKeys is the sentinel behind InsufficientKeysError.
	ErrInsufficientKeys = errors.New("insufficient key shares")

	// ErrTooFewShares rejects multiparty encryption with fewer than two shares.
	ErrTooFewShares = errors.New("at least 2 key shares required")

	// ErrShareLength rejects key shares whose length differs from the master key.
	ErrShareLength = errors.New("key share length mismatch")
)

// StillLockedError reports a timelock decrypt attempted before the unlock
// time. It unwraps to ErrStillLocked.
type StillLockedError struct {
	Remaining time.Duration
}

func (e *StillLockedError) Error() string {
	return fmt.Sprintf("still locked: unlocks in %s", e.Remaining)
}

func (e *StillLockedError) Unwrap() error { return ErrStillLocked }

// InsufficientKeysError reports a multiparty decrypt with the wrong number of
// shares. It unwraps to ErrInsufficientKeys.
type InsufficientKeysError struct {
	Have int
	Need int
}

func (e *InsufficientKeysError) Error() string {
	return fmt.Sprintf("insufficient key shares: have %d, need %d", e.Have, e.Need)
}

func (e *InsufficientKeysError) Unwrap() error { return ErrInsufficientKeys }
