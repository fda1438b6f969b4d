package payments

import (
	"context"

	"github.com/dkrasnov/inkpress/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, payment *models.Payment) error
	TotalPaid(ctx context.Context, txID string) (float64, error)
}
