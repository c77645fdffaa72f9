package auth

import (
	"context"

	"github.com/dalythu/REST-API/internal/db/models"
)

type principalContextKey struct{}

// SetUserContext stores the authenticated user on the context for downstream
// handlers. The value lives for the current request only; it is a fresh
// verification result, never a cached trust decision.
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, principalContextKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// ok is false on requests that did not pass the authentication middleware.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(principalContextKey{}).(*models.User)
	return user, ok && user != nil
}
