package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
	"github.com/dalythu/REST-API/internal/telemetry"
)

func basicAuthHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

// newTestRouter builds the full router around one seeded account so tests
// exercise the same middleware chain production requests go through.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	hash, err := auth.HashPassword("joepassword")
	require.NoError(t, err)

	account := &models.User{
		ID:           ownerAccount.ID,
		FirstName:    ownerAccount.FirstName,
		LastName:     ownerAccount.LastName,
		Email:        ownerAccount.Email,
		PasswordHash: hash,
	}

	users := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
		},
	}
	courses := &mockCourseRepository{
		listFunc: func(ctx context.Context) ([]models.Course, error) {
			return nil, nil
		},
	}

	return NewRouter(RouterOptions{
		Users:    users,
		Courses:  courses,
		Resolver: auth.NewResolver(users),
		Metrics:  telemetry.NewCollector(),
	})
}

func TestRouterAuthenticationGate(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"current user", http.MethodGet, "/api/users"},
		{"create course", http.MethodPost, "/api/courses"},
		{"update course", http.MethodPut, "/api/courses/some-id"},
		{"delete course", http.MethodDelete, "/api/courses/some-id"},
	}

	for _, tc := range tests {
		t.Run(tc.name+" without credentials", func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())
		})
	}
}

func TestRouterAuthenticatedRequest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", basicAuthHeader("joe@smith.com", "joepassword"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "joe@smith.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRouterWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", basicAuthHeader("joe@smith.com", "wrong"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Access Denied"}`, rec.Body.String())
}

func TestRouterPublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("course list is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "courseapi_http_requests_total")
	})
}
