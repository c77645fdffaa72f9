package migrations

import (
	"context"
	"fmt"

	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(up_20260829000002, down_20260829000002)
}

// up_20260829000002 creates the courses table with its owner foreign key
func up_20260829000002(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [up] creating courses table...")
	q := db.NewCreateTable().
		Model((*models.Course)(nil)).
		IfNotExists().
		ForeignKey(`("owner_id") REFERENCES "users" ("id")`)
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create courses table: %w", err)
	}

	_, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_courses_owner_id ON courses(owner_id)`)
	if err != nil {
		return fmt.Errorf("failed to create courses owner index: %w", err)
	}
	fmt.Println(" OK")

	return nil
}

// down_20260829000002 drops the courses table
func down_20260829000002(ctx context.Context, db *bun.DB) error {
	fmt.Print(" [down] dropping courses table...")
	_, err := db.NewDropTable().
		Model((*models.Course)(nil)).
		IfExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to drop courses table: %w", err)
	}
	fmt.Println(" OK")
	return nil
}
