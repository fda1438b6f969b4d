package outbox

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/inkpress/internal/client/models"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE outbox (
  id         TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  payload    BLOB NOT NULL,
  attempts   INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func TestAddAndGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	d := &models.Draft{ID: "d1", Title: "essay", Payload: []byte{0x01, 0x02}}
	require.NoError(t, r.Add(ctx, d))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "d1", items[0].ID)
	assert.Equal(t, "essay", items[0].Title)
	assert.Equal(t, []byte{0x01, 0x02}, items[0].Payload)
	assert.Equal(t, int64(0), items[0].Attempts)
}

func TestAdd_SameIDIsUpsert(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, &models.Draft{ID: "d1", Title: "v1", Payload: []byte("a")}))
	require.NoError(t, r.Add(ctx, &models.Draft{ID: "d1", Title: "v1", Payload: []byte("a"), Attempts: 3}))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Attempts)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, &models.Draft{ID: "d1", Title: "t", Payload: []byte("p")}))
	require.NoError(t, r.DeleteByID(ctx, "d1"))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteByID_NotExists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	err := r.DeleteByID(ctx, "absent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "wrong rows affected count")
}

func TestIncrementAttempts(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, &models.Draft{ID: "d1", Title: "t", Payload: []byte("p")}))
	require.NoError(t, r.IncrementAttempts(ctx, "d1"))
	require.NoError(t, r.IncrementAttempts(ctx, "d1"))

	items, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Attempts)
}

func TestAdd_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	err := r.Add(ctx, &models.Draft{ID: "d1", Title: "t", Payload: []byte("p")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to add draft")
}

func TestGetAll_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.GetAll(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to select drafts")
}
