// Package pricing implements the cost quoting engine: a pure function from
// document size to ledger-storage price, with a per-user spending ceiling
// and escalation suggestions.
//
// All rates are configuration inputs. In particular USDPerUnit comes from an
// external price feed; nothing in this package computes or hardcodes live
// market data.
package pricing

// Rates holds every constant the quoting engine needs. A zero value is not
// usable; start from DefaultRates or from config.
type Rates struct {
	// UnitsPerByte is the miner fee rate in ledger units per stored byte.
	UnitsPerByte float64

	// ServiceMultiplier is the markup applied on top of the miner fee.
	// The service fee is minerFee*(ServiceMultiplier-1).
	ServiceMultiplier float64

	// EncryptionMultiplier is an extra factor applied to the total fee
	// when the payload is encrypted.
	EncryptionMultiplier float64

	// USDPerUnit converts ledger units to USD. Supplied by a price feed.
	USDPerUnit float64

	// BytesPerWord is the average byte weight of one word of prose.
	BytesPerWord int

	// DefaultBudgetUSD is the spending ceiling applied when the caller has
	// not configured one.
	DefaultBudgetUSD float64

	// EscalationWords is the document size at which a budget suggestion is
	// produced even if the quote still fits the current ceiling.
	EscalationWords int

	// BudgetTiers is the ascending list of suggested spending ceilings.
	BudgetTiers []float64
}

// DefaultRates returns the calibration used by the hosted service:
// ~5 bytes per word, 0.05 units/byte miner rate, 2x service markup,
// +50% for encryption, and a one-cent default ceiling.
func DefaultRates() Rates {
	return Rates{
		UnitsPerByte:         0.05,
		ServiceMultiplier:    2.0,
		EncryptionMultiplier: 1.5,
		USDPerUnit:           60.0 / 100_000_000, // placeholder feed value
		BytesPerWord:         5,
		DefaultBudgetUSD:     0.01,
		EscalationWords:      5000,
		BudgetTiers:          []float64{0.01, 0.02, 0.05, 0.10},
	}
}
