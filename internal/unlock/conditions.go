// Package unlock decides when a published package becomes readable. The
// policy (Conditions) is orthogonal to how the content was encrypted; the
// evaluator is a pure, stateless function the caller polls.
package unlock

import (
	"errors"
	"time"
)

var (
	// ErrInvalidSchedule rejects a timed policy whose unlock time is not in
	// the future at creation.
	ErrInvalidSchedule = errors.New("unlock time must be in the future")

	// ErrNoPrice rejects a priced policy without a positive price.
	ErrNoPrice = errors.New("unlock price must be positive")

	// ErrNoKeyCount rejects a multiparty policy without a share count.
	ErrNoKeyCount = errors.New("required key count must be at least 2")

	// ErrUnknownMethod rejects an unrecognized policy method.
	ErrUnknownMethod = errors.New("unknown unlock method")
)

// Method names an unlock policy.
type Method string

const (
	MethodImmediate      Method = "immediate"
	MethodTimed          Method = "timed"
	MethodPriced         Method = "priced"
	MethodTimedAndPriced Method = "timedAndPriced"
	MethodMultiparty     Method = "multiparty"
)

// TieredPricing offers a cheaper preview price alongside the full price.
type TieredPricing struct {
	Preview float64 `json:"preview"`
	Full    float64 `json:"full"`
}

// Conditions describes when a package becomes readable. Immutable after
// creation.
type Conditions struct {
	Method        Method         `json:"method"`
	UnlockTime    time.Time      `json:"unlockTime,omitzero"`
	UnlockPrice   float64        `json:"unlockPrice,omitempty"`
	Tiered        *TieredPricing `json:"tieredPricing,omitempty"`
	PreviewLength int            `json:"previewLength,omitempty"`
	RequiredKeys  int            `json:"requiredKeys,omitempty"`
}

// Immediate returns the always-readable policy.
func Immediate() Conditions { return Conditions{Method: MethodImmediate} }

// Price returns the effective full-access price: the explicit price, or the
// tiered full price when tiers are configured.
func (c Conditions) Price() float64 {
	if c.UnlockPrice > 0 {
		return c.UnlockPrice
	}
	if c.Tiered != nil {
		return c.Tiered.Full
	}
	return 0
}

// Validate checks the policy against the current time. Timed variants need a
// future unlock time; priced variants need a positive price; multiparty
// needs at least two shares.
func (c Conditions) Validate(now time.Time) error {
	switch c.Method {
	case MethodImmediate:
		return nil
	case MethodTimed:
		return c.validateTime(now)
	case MethodPriced:
		return c.validatePrice()
	case MethodTimedAndPriced:
		if err := c.validateTime(now); err != nil {
			return err
		}
		return c.validatePrice()
	case MethodMultiparty:
		if c.RequiredKeys < 2 {
			return ErrNoKeyCount
		}
		return nil
	default:
		return ErrUnknownMethod
	}
}

func (c Conditions) validateTime(now time.Time) error {
	if !c.UnlockTime.After(now) {
		return ErrInvalidSchedule
	}
	return nil
}

func (c Conditions) validatePrice() error {
	if c.Price() <= 0 {
		return ErrNoPrice
	}
	return nil
}
