// Package models defines local persistence types for the writer CLI.
package models

import "time"

// Draft is an assembled document package that failed to broadcast and is
// parked in the local outbox until the next retry.
type Draft struct {
	ID        string
	Title     string
	Payload   []byte
	Attempts  int64
	CreatedAt time.Time
}
