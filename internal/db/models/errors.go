package models

import "strings"

// ValidationError carries one message per violated field-level rule, in the
// order the violations were discovered. It is surfaced to clients verbatim,
// so messages are written for end users, not operators.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// orNil returns the collected error, or nil when no rule was violated.
// Returning a typed nil *ValidationError as error would compare non-nil,
// hence the explicit check.
func (e ValidationError) orNil() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return &e
}
