// Package session keeps small key-value state for the writer CLI, such as
// the access token and handle of the logged-in author.
package session

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
