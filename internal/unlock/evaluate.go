package unlock

import (
	"fmt"
	"time"
)

// State is the externally observable lock state.
type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// Lock reasons surfaced to callers while Locked.
const (
	ReasonTimeLocked      = "time-locked"
	ReasonPaymentRequired = "payment-required"
	ReasonInsufficientKey = "insufficient-keys"
)

// Input carries the external facts one evaluation depends on. The evaluator
// owns no timer and keeps no state; callers poll with fresh inputs.
type Input struct {
	Now             time.Time
	PaymentReceived bool
	ProvidedKeys    int
}

// Status is the result of one evaluation. While Locked, Remaining counts
// down to a timed unlock, RemainingKeys counts missing shares, and Price is
// the payment that would unlock (both are set for timedAndPriced so the
// caller can present either path).
type Status struct {
	State         State
	Reason        string
	Remaining     time.Duration
	RemainingKeys int
	Price         float64
}

// Evaluate applies the policy to the given inputs. It is idempotent: once a
// call reports Unlocked the caller is expected to cache that result and stop
// polling.
func Evaluate(c Conditions, in Input) Status {
	switch c.Method {
	case MethodTimed:
		if !in.Now.Before(c.UnlockTime) {
			return Status{State: Unlocked}
		}
		return Status{
			State:     Locked,
			Reason:    ReasonTimeLocked,
			Remaining: c.UnlockTime.Sub(in.Now),
		}

	case MethodPriced:
		if in.PaymentReceived {
			return Status{State: Unlocked}
		}
		return Status{
			State:  Locked,
			Reason: ReasonPaymentRequired,
			Price:  c.Price(),
		}

	case MethodTimedAndPriced:
		// Pay-to-skip-the-wait: either path unlocks.
		if in.PaymentReceived || !in.Now.Before(c.UnlockTime) {
			return Status{State: Unlocked}
		}
		return Status{
			State:     Locked,
			Reason:    ReasonPaymentRequired,
			Remaining: c.UnlockTime.Sub(in.Now),
			Price:     c.Price(),
		}

	case MethodMultiparty:
		if in.ProvidedKeys >= c.RequiredKeys {
			return Status{State: Unlocked}
		}
		return Status{
			State:         Locked,
			Reason:        ReasonInsufficientKey,
			RemainingKeys: c.RequiredKeys - in.ProvidedKeys,
		}

	default:
		// immediate, and any policy this version does not recognize, reads
		// as open rather than permanently locking the content.
		return Status{State: Unlocked}
	}
}

// FormatRemaining renders a countdown as "2h 5m 30s", omitting leading zero
// units, for status displays.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
