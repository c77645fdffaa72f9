package auth

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
)

var (
	// ErrUnknownEmail reports that no account matches the claimed email.
	ErrUnknownEmail = errors.New("no account for email address")
	// ErrPasswordMismatch reports that the account exists but the password
	// failed verification.
	ErrPasswordMismatch = errors.New("password verification failed")
)

// Resolver turns a credential pair into an authenticated user by looking up
// the account and verifying the password hash. It holds no per-request
// state and is safe for concurrent use.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver creates a Resolver backed by the given user repository.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve authenticates the credential pair. It returns the matched user,
// ErrUnknownEmail, ErrPasswordMismatch, or a wrapped repository error for
// store failures. Each outcome emits one audit log line; the lines are
// informational and never reach the client.
func (r *Resolver) Resolve(ctx context.Context, creds Credentials) (*models.User, error) {
	user, err := r.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("authentication failure: user not found for email address %s", creds.Email)
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if err := VerifyPassword(user.PasswordHash, creds.Password); err != nil {
		log.Printf("authentication failure for email address %s", user.Email)
		return nil, ErrPasswordMismatch
	}

	log.Printf("authentication successful for email address %s", user.Email)
	return user, nil
}
