package migrations

import (
	"context"
	"fmt"

	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(up_20260829000001, down_20260829000001)
}

// up_20260829000001 creates the users table
func up_20260829000001(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [up] creating users table...")
	_, err := db.NewCreateTable().
		Model((*models.User)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	// Unique index backs the email uniqueness rule surfaced to clients
	_, err = db.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`)
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	fmt.Println(" OK")

	return nil
}

// down_20260829000001 drops the users table
func down_20260829000001(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [down] dropping users table...")
	_, err := db.NewDropTable().
		Model((*models.User)(nil)).
		IfExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop users table: %w", err)
	}
	fmt.Println(" OK")
	return nil
}
