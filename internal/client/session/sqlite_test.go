package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok-1")))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)
}

func TestGet_AbsentKeyReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUser, []byte(`{"_id":"old"}`)))
	require.NoError(t, r.Set(ctx, KeyUser, []byte(`{"_id":"new"}`)))

	v, err := r.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"_id":"new"}`), v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, r.Delete(ctx, KeyToken))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, KeyToken))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, r.Set(ctx, KeyUser, []byte("{}")))
	require.NoError(t, r.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		v, err := r.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), KeyToken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get session[userToken]")
}

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(context.Background(), KeyToken, []byte("tok")))
}
