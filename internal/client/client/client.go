package client

import (
	"context"
)

type Client interface {
	Close() error
	Register(ctx context.Context, handle string, password string, paymentAddress string) (string, error)
	Login(ctx context.Context, handle string, password string) (string, error)
	Ping(ctx context.Context) error
	Broadcast(ctx context.Context, payload []byte) (string, error)
	Retrieve(ctx context.Context, txID string) ([]byte, error)
	HasPaid(ctx context.Context, txID string) (bool, error)
	RecordPayment(ctx context.Context, txID string, amountUSD float64) error
	SetAccessToken(token string)
	AccessToken() string
}
