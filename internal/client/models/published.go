package models

import "time"

// PublishedWork is the local record of a successfully broadcast document.
type PublishedWork struct {
	TxID      string
	Title     string
	WordCount int64
	TotalUSD  float64
	Encrypted bool
	CreatedAt time.Time
}
