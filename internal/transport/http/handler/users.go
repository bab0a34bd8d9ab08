package handler

import (
	"context"
	"net/http"

	"github.com/pavankalyan07-python/NextAthlete/internal/domain"
	"github.com/pavankalyan07-python/NextAthlete/internal/transport/http/middleware"
)

// UserGetter loads a user record by its primary key.
type UserGetter interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// UserHandler serves authenticated profile reads.
type UserHandler struct {
	users UserGetter
}

func NewUserHandler(users UserGetter) *UserHandler { return &UserHandler{users: users} }

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	u, err := h.users.Get(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: u})
}
