// Package migrations holds the bun schema migrations for the course API.
// Each migration lives in its own timestamped file and registers itself
// with the shared collection via init.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations is the collection consumed by the db cobra commands and tests.
var Migrations = migrate.NewMigrations()
