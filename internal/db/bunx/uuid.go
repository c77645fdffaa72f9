package bunx

import "github.com/google/uuid"

// NewUUIDv7 generates a time-ordered UUIDv7 string for database primary keys.
//
// UUIDv7 keys sort by creation time, which keeps index pages warm, and work
// identically on PostgreSQL and SQLite (no gen_random_uuid() dependency).
//
// This function panics if UUID generation fails, which only occurs when the
// system entropy source is exhausted; at that point no ID generation would
// succeed anyway.
func NewUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}
