package jwtinfra

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pavankalyan07-python/NextAthlete/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, secret string) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{
		JWTSecret:            secret,
		VerificationTokenTTL: time.Hour,
		AccessTokenTTL:       24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	require.Error(t, err)
}

func TestVerification_RoundTrip(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignVerification("u1")
	require.NoError(t, err)

	userID, err := p.VerifyVerification(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestVerification_Expired(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	p.verificationTTL = -time.Minute

	tok, err := p.SignVerification("u1")
	require.NoError(t, err)

	_, err = p.VerifyVerification(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerification_WrongSecret(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	other := newTestProvider(t, "another-secret")

	tok, err := other.SignVerification("u1")
	require.NoError(t, err)

	_, err = p.VerifyVerification(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerification_TamperedSignature(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignVerification("u1")
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = p.VerifyVerification(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerification_Malformed(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	_, err := p.VerifyVerification("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerification_RejectsAccessToken(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignAccess("u1", "s1")
	require.NoError(t, err)

	_, err = p.VerifyVerification(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerification_BindsIdentity(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignVerification("userA")
	require.NoError(t, err)

	userID, err := p.VerifyVerification(tok)
	require.NoError(t, err)
	assert.NotEqual(t, "userB", userID)
}

func TestVerification_RejectsUnsignedToken(t *testing.T) {
	p := newTestProvider(t, "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:  "u1",
		Purpose: PurposeVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = p.VerifyVerification(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccess_RoundTrip(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignAccess("u1", "s1")
	require.NoError(t, err)

	claims, err := p.VerifyAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestAccess_RejectsVerificationToken(t *testing.T) {
	p := newTestProvider(t, "test-secret")
	tok, err := p.SignVerification("u1")
	require.NoError(t, err)

	_, err = p.VerifyAccess(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
