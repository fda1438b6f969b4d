package published

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/client/models"
	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add records a broadcast work. Re-broadcasting the same payload yields the
// same transaction id, so a duplicate insert is treated as a refresh.
func (r *SQLiteRepository) Add(ctx context.Context, w *models.PublishedWork) error {
	query := `INSERT INTO published (tx_id, title, word_count, total_usd, encrypted)
			values (?, ?, ?, ?, ?)
			ON CONFLICT(tx_id) DO UPDATE SET title = excluded.title
	`
	_, err := r.db.ExecContext(ctx, query, w.TxID, w.Title, w.WordCount, w.TotalUSD, w.Encrypted)
	if err != nil {
		return fmt.Errorf("failed to add published work: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.PublishedWork, error) {
	query := `select tx_id, title, word_count, total_usd, encrypted, created_at from published order by created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select published works: %w", err)
	}
	defer rows.Close()

	var result []*models.PublishedWork
	for rows.Next() {
		item := &models.PublishedWork{}
		if err := rows.Scan(&item.TxID, &item.Title, &item.WordCount, &item.TotalUSD, &item.Encrypted, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByTxID(ctx context.Context, txID string) (*models.PublishedWork, error) {
	query := `select tx_id, title, word_count, total_usd, encrypted, created_at from published where tx_id=?`
	row := r.db.QueryRowContext(ctx, query, txID)

	item := &models.PublishedWork{}
	err := row.Scan(&item.TxID, &item.Title, &item.WordCount, &item.TotalUSD, &item.Encrypted, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published work: %w", err)
	}
	return item, nil
}
