package cryptox

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"
)

// TimelockCipher seals content under a key derived solely from the unlock
// time (SHA-256 of its epoch seconds).
//
// This is a cooperative timelock: it trusts the clock the caller supplies at
// decrypt time rather than enforcing the delay cryptographically. Anyone who
// knows the unlock time can derive the key early. A verifiable-delay scheme
// would change who supplies "now" and is deliberately out of contract.
type TimelockCipher struct {
	UnlockTime time.Time
}

func (TimelockCipher) Method() Method { return MethodTimelock }

func (c TimelockCipher) Seal(plaintext []byte) ([]byte, Envelope, error) {
	key := timelockKey(c.UnlockTime)

	ciphertext, err := seal(key, derivedNonce(key, "inkpress.timelock"), plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("timelock seal: %w", err)
	}

	return ciphertext, TimelockEnvelope{UnlockTime: c.UnlockTime}, nil
}

// OpenTimelock reverses a time-locked ciphertext. Before the unlock time it
// fails with a StillLockedError carrying the remaining wait; the caller polls
// and retries.
func OpenTimelock(ciphertext []byte, env TimelockEnvelope, now time.Time) ([]byte, error) {
	if now.Before(env.UnlockTime) {
		return nil, &StillLockedError{Remaining: env.UnlockTime.Sub(now)}
	}

	key := timelockKey(env.UnlockTime)
	plaintext, err := open(key, derivedNonce(key, "inkpress.timelock"), ciphertext)
	if err != nil {
		return nil, fmt.Errorf("timelock open: %w", err)
	}
	return plaintext, nil
}

// timelockKey derives the key from whole epoch seconds, so sub-second
// precision in the stored unlock time does not change the key.
func timelockKey(unlockTime time.Time) []byte {
	sum := sha256.Sum256([]byte(strconv.FormatInt(unlockTime.Unix(), 10)))
	return sum[:]
}
