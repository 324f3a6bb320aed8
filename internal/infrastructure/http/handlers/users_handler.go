package handlers

import (
	"net/http"

	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/middleware"
)

// UsersHandler serves GET /users/me. Requires JWT auth.
type UsersHandler struct {
	userRepo ports.UserRepository
}

// NewUsersHandler creates a handler for user resource endpoints.
func NewUsersHandler(userRepo ports.UserRepository) *UsersHandler {
	return &UsersHandler{userRepo: userRepo}
}

// Me returns the current user's profile from the token identity.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "authentication required")
		return
	}
	user, err := h.userRepo.GetByID(r.Context(), identity.UserID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, "", "user not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": summarizeUser(user),
	})
}
