package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
)

// mockUserRepository implements repository.UserRepository for gate tests
type mockUserRepository struct {
	getByEmailFunc func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	return errors.New("not implemented")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func basicAuth(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func gateFor(t *testing.T, repo repository.UserRepository) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.GetUserFromContext(r.Context())
		require.True(t, ok, "principal must be attached after the gate")
		w.Header().Set("X-Principal-Email", user.Email)
		w.WriteHeader(http.StatusOK)
	})

	return RequireUser(auth.NewResolver(repo))(next)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestRequireUser(t *testing.T) {
	hash, err := auth.HashPassword("joepassword")
	require.NoError(t, err)

	account := &models.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Email:        "joe@smith.com",
		PasswordHash: hash,
	}

	repo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, repository.ErrNotFound
		},
	}

	t.Run("continues with principal on valid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", basicAuth("joe@smith.com", "joepassword"))
		rec := httptest.NewRecorder()

		gateFor(t, repo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "joe@smith.com", rec.Header().Get("X-Principal-Email"))
	})

	t.Run("all credential failures share one denial body", func(t *testing.T) {
		tests := []struct {
			name       string
			authHeader string
		}{
			{"missing header", ""},
			{"garbled header", "Basic not-base64"},
			{"unknown email", basicAuth("nobody@smith.com", "joepassword")},
			{"wrong password", basicAuth("joe@smith.com", "wrong")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
				if tt.authHeader != "" {
					req.Header.Set("Authorization", tt.authHeader)
				}
				rec := httptest.NewRecorder()

				gateFor(t, repo).ServeHTTP(rec, req)

				// Identical status and body for every failure mode, so a
				// client cannot distinguish unknown accounts from bad
				// passwords.
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, "Access Denied", decodeMessage(t, rec))
				assert.NotContains(t, rec.Body.String(), "smith.com")
			})
		}
	})

	t.Run("store failure answers 500 not 401", func(t *testing.T) {
		failing := &mockUserRepository{
			getByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return nil, errors.New("connection refused")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", basicAuth("joe@smith.com", "joepassword"))
		rec := httptest.NewRecorder()

		gateFor(t, failing).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
