package payments

import (
	"context"
	"fmt"

	"github.com/dkrasnov/inkpress/internal/dbx"
	"github.com/dkrasnov/inkpress/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, payment *models.Payment) error {

	query :=
		`INSERT INTO payments (tx_id, amount_usd)
         VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, payment.TxID, payment.AmountUSD)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// TotalPaid sums all settled payments against a document. A document nobody
// has paid for yields zero, not an error.
func (r *PostgresRepository) TotalPaid(ctx context.Context, txID string) (float64, error) {
	query :=
		`SELECT COALESCE(SUM(amount_usd), 0) FROM payments
		 WHERE tx_id = $1
		 `

	var total float64
	err := r.db.QueryRowContext(ctx, query, txID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
