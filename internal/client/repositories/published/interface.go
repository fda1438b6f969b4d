// Package published stores the local catalog of broadcast documents.
package published

import (
	"context"

	"github.com/dkrasnov/inkpress/internal/client/models"
)

type Repository interface {
	Add(ctx context.Context, w *models.PublishedWork) error
	GetAll(ctx context.Context) ([]*models.PublishedWork, error)
	GetByTxID(ctx context.Context, txID string) (*models.PublishedWork, error)
}
