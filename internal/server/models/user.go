// Package models defines the persistence-level types shared between
// repositories and services.
package models

import "time"

type User struct {
	ID             string
	Handle         string
	PaymentAddress string
	PasswordHash   []byte
	Salt           []byte
	CreatedAt      time.Time
}
