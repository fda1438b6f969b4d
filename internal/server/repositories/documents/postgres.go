package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/dbx"
	"github.com/dkrasnov/inkpress/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a document record. Re-broadcasting the same payload yields
// the same tx_id; the conflict clause makes that a no-op so broadcasts stay
// idempotent.
func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) error {

	query :=
		`INSERT INTO documents (tx_id, user_id, payload, storage_key, byte_size)
         VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (tx_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query,
		doc.TxID, doc.UserID, doc.Payload, doc.StorageKey, doc.ByteSize)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByTxID(ctx context.Context, txID string) (*models.Document, error) {
	query :=
		`SELECT tx_id, user_id, payload, storage_key, byte_size, created_at FROM documents
		 WHERE tx_id = $1
		 `

	doc := &models.Document{}
	err := r.db.QueryRowContext(ctx, query, txID).Scan(
		&doc.TxID, &doc.UserID, &doc.Payload, &doc.StorageKey, &doc.ByteSize, &doc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}
