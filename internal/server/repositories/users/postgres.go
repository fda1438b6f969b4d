package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (handle, payment_address, password_hash, salt)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Handle, user.PaymentAddress, user.PasswordHash, user.Salt).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	query :=
		`SELECT id, handle, payment_address, password_hash, salt FROM users
		 WHERE handle = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, handle).Scan(
		&user.ID, &user.Handle, &user.PaymentAddress, &user.PasswordHash, &user.Salt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
