package models

import "time"

// Document is a broadcast package record. Small payloads are stored inline in
// Payload; oversized ones live in object storage under StorageKey, in which
// case Payload is empty.
type Document struct {
	TxID       string
	UserID     string
	Payload    []byte
	StorageKey string
	ByteSize   int64
	CreatedAt  time.Time
}
