package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pavankalyan07-python/NextAthlete/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserGetter struct{ mock.Mock }

func (m *mockUserGetter) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestMe_Success(t *testing.T) {
	email := "asha@example.com"
	users := new(mockUserGetter)
	users.On("Get", mock.Anything, "u1").
		Return(&domain.User{UserID: "u1", FullName: "Asha Rao", Email: &email, IsVerified: true}, nil)
	h := NewUserHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = withClaims(req, "u1", "s1")
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"full_name":"Asha Rao"`)
	assert.NotContains(t, rr.Body.String(), "password_hash")
	users.AssertExpectations(t)
}

func TestMe_NoClaims(t *testing.T) {
	users := new(mockUserGetter)
	h := NewUserHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	users.AssertNotCalled(t, "Get")
}

func TestMe_UserGone(t *testing.T) {
	users := new(mockUserGetter)
	users.On("Get", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
	h := NewUserHandler(users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = withClaims(req, "u1", "s1")
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
