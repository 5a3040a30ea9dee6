package db

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/core/domain"
)

// setupTestDB creates a migrated in-memory database.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) domain.User {
	t.Helper()
	user, err := NewUserRepository(db).Create(context.Background(), domain.User{
		Username:     username,
		PasswordHash: "hash",
		FirstName:    "First",
		LastName:     "Last",
	})
	require.NoError(t, err)
	return user
}

func createTestStatus(t *testing.T, db *sqlx.DB, name string) domain.Status {
	t.Helper()
	status, err := NewStatusRepository(db).Create(context.Background(), name)
	require.NoError(t, err)
	return status
}

func createTestLabel(t *testing.T, db *sqlx.DB, name string) domain.Label {
	t.Helper()
	label, err := NewLabelRepository(db).Create(context.Background(), name)
	require.NoError(t, err)
	return label
}
