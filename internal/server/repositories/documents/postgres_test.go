package documents

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkrasnov/inkpress/internal/common"
	"github.com/dkrasnov/inkpress/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+documents\s*\(tx_id,\s*user_id,\s*payload,\s*storage_key,\s*byte_size\)`
const selectQ = `(?s)^SELECT\s+tx_id,\s*user_id,\s*payload,\s*storage_key,\s*byte_size,\s*created_at\s+FROM\s+documents`

func TestCreate_Inline(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("tx-1", "u-1", []byte("payload"), "", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc := &models.Document{TxID: "tx-1", UserID: "u-1", Payload: []byte("payload"), ByteSize: 7}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_Rebroadcast_NoError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// conflict clause swallows the duplicate, zero rows affected
	mock.ExpectExec(insertQ).
		WithArgs("tx-1", "u-1", []byte("payload"), "", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	doc := &models.Document{TxID: "tx-1", UserID: "u-1", Payload: []byte("payload"), ByteSize: 7}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetByTxID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"tx_id", "user_id", "payload", "storage_key", "byte_size", "created_at"}).
		AddRow("tx-1", "u-1", []byte("payload"), "", int64(7), now)
	mock.ExpectQuery(selectQ).
		WithArgs("tx-1").
		WillReturnRows(rows)

	got, err := repo.GetByTxID(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("GetByTxID error: %v", err)
	}
	if got.TxID != "tx-1" || string(got.Payload) != "payload" {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestGetByTxID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).
		WithArgs("tx-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByTxID(context.Background(), "tx-missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
