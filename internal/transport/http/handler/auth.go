package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pavankalyan07-python/NextAthlete/internal/application/registration"
	"github.com/pavankalyan07-python/NextAthlete/internal/domain"
)

// AuthHandler handles signup, verification redemption and resend endpoints.
type AuthHandler struct {
	svc registration.Service
}

func NewAuthHandler(svc registration.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.SignUp(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) || errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	msg := "Registration successful! Please verify your email."
	if u.ContactMethod == domain.ContactPhone {
		msg = "Registration successful! Please verify your account."
	}
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: msg})
}

// Verify redeems the token from the inbound link. Expired, forged and
// unknown-identity failures all collapse into the same plain-text rejection so
// the endpoint can't be used as a token oracle.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}
	if err := h.svc.Verify(r.Context(), tokenStr); err != nil {
		http.Error(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Email verified! You can log in."))
}

func (h *AuthHandler) Resend(w http.ResponseWriter, r *http.Request) {
	var req registration.ResendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Resend(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "Verification link sent"})
}
