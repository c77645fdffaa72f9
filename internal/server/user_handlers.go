package server

import (
	"encoding/json"
	"net/http"

	"github.com/dalythu/REST-API/internal/auth"
	"github.com/dalythu/REST-API/internal/db/models"
	"github.com/dalythu/REST-API/internal/repository"
)

// UserHandlers wires the /api/users endpoints.
type UserHandlers struct {
	users repository.UserRepository
}

// NewUserHandlers creates a new handler set for user operations
func NewUserHandlers(users repository.UserRepository) *UserHandlers {
	return &UserHandlers{users: users}
}

// userResponse is the client-visible shape of an account. The password hash
// and timestamps are deliberately absent.
type userResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.Email,
	}
}

// createUserRequest is the POST /api/users body.
type createUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// GetCurrentUser handles GET /api/users - return the authenticated account
func (h *UserHandlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		// Only reachable when the route is wired without the auth gate.
		respondMessage(w, http.StatusUnauthorized, "Access Denied")
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// CreateUser handles POST /api/users - register a new account
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.EmailAddress,
	}

	// An absent password is left for model validation to report, in field
	// order, alongside any other violations.
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondUnexpected(w, err)
			return
		}
		user.PasswordHash = hash
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		respondWriteError(w, err)
		return
	}

	w.Header().Set("Location", "/")
	respondMessage(w, http.StatusCreated, "Account successfully created!")
}
