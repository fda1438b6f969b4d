package outbox

import (
	"context"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/client/models"
	"github.com/dkrasnov/inkpress/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add parks a draft in the outbox.
func (r *SQLiteRepository) Add(ctx context.Context, d *models.Draft) error {
	query := `INSERT INTO outbox (id, title, payload, attempts)
			values (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET attempts = excluded.attempts
	`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Title, d.Payload, d.Attempts)
	if err != nil {
		return fmt.Errorf("failed to add draft: %w", err)
	}
	return nil
}

// GetAll lists all parked drafts, oldest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.Draft, error) {
	query := `select id, title, payload, attempts, created_at from outbox order by created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []*models.Draft
	for rows.Next() {
		item := &models.Draft{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Payload, &item.Attempts, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a draft once it has been broadcast. It expects exactly
// one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `delete from outbox where id=?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

// IncrementAttempts bumps the retry counter after a failed broadcast.
func (r *SQLiteRepository) IncrementAttempts(ctx context.Context, id string) error {
	query := `update outbox set attempts = attempts + 1 where id=?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	return nil
}
