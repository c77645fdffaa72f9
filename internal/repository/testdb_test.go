package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/dalythu/REST-API/internal/db/bunx"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/migrations"
)

// setupTestDB opens an in-memory SQLite database and runs the real schema
// migrations so tests exercise the same DDL production uses.
func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := bunx.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := migrate.NewMigrator(db, migrations.Migrations)
	ctx := context.Background()
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, users *BunUserRepository, email string) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfakeh",
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}
