package repository

import (
	"errors"
	"strings"

	"github.com/uptrace/bun/driver/pgdriver"
)

// ErrNotFound reports that no record matched the lookup. Callers that need
// context wrap it, e.g. fmt.Errorf("course %s: %w", id, ErrNotFound), and
// test with errors.Is.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a uniqueness-constraint violation translated into
// client-facing messages. Like models.ValidationError it is surfaced to
// clients verbatim.
type ConstraintError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	return "constraint violated: " + strings.Join(e.Messages, "; ")
}

// isUniqueViolation reports whether err originates from a unique index or
// constraint, covering both the PostgreSQL driver and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Field('C') == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
