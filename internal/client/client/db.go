package client

import (
	"context"
	"database/sql"
	"log"

	"github.com/dkrasnov/inkpress/internal/client/migrations"
	"github.com/dkrasnov/inkpress/internal/client/repositories/outbox"
	"github.com/dkrasnov/inkpress/internal/client/repositories/published"
	"github.com/dkrasnov/inkpress/internal/client/repositories/session"
	"github.com/pressly/goose/v3"
)

type Repositories struct {
	DB        *sql.DB
	Outbox    outbox.Repository
	Published published.Repository
	Session   session.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		DB:        db,
		Outbox:    outbox.NewSQLiteRepository(db),
		Published: published.NewSQLiteRepository(db),
		Session:   session.NewSQLiteRepository(db),
	}
	return repos, nil
}
