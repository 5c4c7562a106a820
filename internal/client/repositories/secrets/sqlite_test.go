package secrets

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/messmate/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE secrets (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  nonce BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSetGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	key := common.GenerateRandByteArray(32)
	r := NewSQLiteRepository(db, key)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("tok-abc")))

	got, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-abc"), got)
}

func TestSet_ValueIsSealedOnDisk(t *testing.T) {
	db := setupDB(t)
	key := common.GenerateRandByteArray(32)
	r := NewSQLiteRepository(db, key)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("tok-abc")))

	var raw []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM secrets WHERE key='auth_token'`).Scan(&raw))
	assert.NotEqual(t, []byte("tok-abc"), raw, "plaintext must never be stored")
}

func TestSet_Overwrites(t *testing.T) {
	db := setupDB(t)
	key := common.GenerateRandByteArray(32)
	r := NewSQLiteRepository(db, key)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("first")))
	require.NoError(t, r.Set(ctx, "auth_token", []byte("second")))

	got, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))

	got, err := r.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGet_WrongSealKeyFails(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	w := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	require.NoError(t, w.Set(ctx, "auth_token", []byte("tok")))

	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	_, err := r.Get(ctx, "auth_token")
	assert.Error(t, err)
}

func TestDelete_Idempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("tok")))
	require.NoError(t, r.Delete(ctx, "auth_token"))
	require.NoError(t, r.Delete(ctx, "auth_token"), "deleting an absent key is a no-op")

	got, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClear_RemovesAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))
	require.NoError(t, r.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM secrets`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestGet_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value, nonce FROM secrets`).
		WillReturnError(errors.New("disk I/O error"))

	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	_, err = r.Get(context.Background(), "auth_token")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO secrets`).
		WillReturnError(errors.New("database is locked"))

	r := NewSQLiteRepository(db, common.GenerateRandByteArray(32))
	err = r.Set(context.Background(), "auth_token", []byte("tok"))
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
