// Package middleware provides the request-level authentication gate and
// shared HTTP middleware for the course API.
package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dalythu/REST-API/internal/auth"
)

// RequireUser returns middleware that authenticates the request with Basic
// Auth credentials via the resolver and attaches the resulting principal to
// the request context. Routes that omit this middleware run unauthenticated.
//
// Every failure path answers with the same generic 401 body. The specific
// reason (missing header, unknown email, wrong password) is logged for
// diagnostics but never surfaced, so clients cannot enumerate account
// email addresses.
func RequireUser(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, ok := auth.ParseBasicAuth(r.Header.Get("Authorization"))
			if !ok {
				log.Printf("authentication failure: auth header not found for %s %s", r.Method, r.URL.Path)
				accessDenied(w)
				return
			}

			user, err := resolver.Resolve(r.Context(), creds)
			if err != nil {
				// Credential failures collapse into the uniform denial.
				// A store failure is not a credential decision and goes to
				// the generic unexpected-error response instead.
				switch {
				case errors.Is(err, auth.ErrUnknownEmail), errors.Is(err, auth.ErrPasswordMismatch):
					accessDenied(w)
				default:
					log.Printf("authentication error for %s %s: %v", r.Method, r.URL.Path, err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{"message": "An unexpected error occurred"})
				}
				return
			}

			ctx := auth.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// accessDenied writes the uniform denial response shared by all
// authentication failure modes.
func accessDenied(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
}
