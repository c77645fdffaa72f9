package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
)

// messageResponse is the single-message error body, e.g. 404 and 403 denials.
type messageResponse struct {
	Message string `json:"message"`
}

// errorListResponse carries the ordered validation message list of a 400.
type errorListResponse struct {
	Errors []string `json:"errors"`
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondMessage writes a single-message JSON body.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, messageResponse{Message: msg})
}

// clientMessages normalizes persistence failures that are safe to show to
// clients. Validation-rule violations and uniqueness-constraint violations
// yield their ordered message lists; every other error reports ok=false and
// must be propagated to the unexpected-error path unchanged.
func clientMessages(err error) ([]string, bool) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		return validation.Messages, true
	}
	var constraint *repository.ConstraintError
	if errors.As(err, &constraint) {
		return constraint.Messages, true
	}
	return nil, false
}

// respondWriteError maps a failed create/update to the client contract:
// 400 with the message list for validation and constraint failures, the
// logged generic 500 for everything else. The process never dies for a
// single bad request; panics are additionally caught by chi's Recoverer.
func respondWriteError(w http.ResponseWriter, err error) {
	if msgs, ok := clientMessages(err); ok {
		respondJSON(w, http.StatusBadRequest, errorListResponse{Errors: msgs})
		return
	}
	respondUnexpected(w, err)
}

// respondUnexpected logs the cause and answers with the generic failure body.
func respondUnexpected(w http.ResponseWriter, err error) {
	log.Printf("unexpected error: %v", err)
	respondMessage(w, http.StatusInternalServerError, "An unexpected error occurred")
}
