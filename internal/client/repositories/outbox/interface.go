package outbox

import (
	"context"

	"github.com/dkrasnov/inkpress/internal/client/models"
)

type Repository interface {
	Add(ctx context.Context, d *models.Draft) error
	GetAll(ctx context.Context) ([]*models.Draft, error)
	DeleteByID(ctx context.Context, id string) error
	IncrementAttempts(ctx context.Context, id string) error
}
