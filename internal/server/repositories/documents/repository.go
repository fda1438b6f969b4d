package documents

import (
	"context"

	"github.com/dkrasnov/inkpress/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByTxID(ctx context.Context, txID string) (*models.Document, error)
}
