package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkrasnov/inkpress/internal/dbx"
	"github.com/dkrasnov/inkpress/internal/server/repositories/documents"
	"github.com/dkrasnov/inkpress/internal/server/repositories/payments"
	"github.com/dkrasnov/inkpress/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Documents(db dbx.DBTX) documents.Repository
	Payments(db dbx.DBTX) payments.Repository
}
