package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/storage"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a private in-memory sqlite database with the schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := storage.Open(context.Background(), storage.DriverSQLite, dsn, storage.Options{})
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func seedUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, NewUserWriteRepository(db, nil).Save(context.Background(), user))
	return user.UserID
}

// txFromContext is the getter used by tests that bind a transaction to the context.
type testTxKey struct{}

func testTxGetter(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(testTxKey{}).(*sqlx.Tx)
	return tx
}
