package models

import "time"

// Payment records a settled unlock payment against a broadcast document.
type Payment struct {
	ID        string
	TxID      string
	AmountUSD float64
	CreatedAt time.Time
}
