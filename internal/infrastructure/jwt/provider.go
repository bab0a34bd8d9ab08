package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pavankalyan07-python/NextAthlete/internal/config"
)

// Token lifecycle errors. Handlers must collapse both into one generic
// rejection; distinguishing them to the caller would give token guessers an
// oracle.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Purpose values. A verification token never passes access verification and
// vice versa, even though both are signed with the same secret.
const (
	PurposeVerification = "email_verify"
	PurposeAccess       = "access"
)

// Claims holds the JWT payload fields.
type Claims struct {
	UserID    string `json:"user_id"`
	Purpose   string `json:"purpose"`
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs with a server-held secret. Tokens are
// self-contained: validation needs no server-side state beyond the secret.
type Provider struct {
	secret          []byte
	verificationTTL time.Duration
	accessTTL       time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret not configured")
	}
	return &Provider{
		secret:          []byte(cfg.JWTSecret),
		verificationTTL: cfg.VerificationTokenTTL,
		accessTTL:       cfg.AccessTokenTTL,
	}, nil
}

// SignVerification issues a token binding userID to a verification intent,
// valid for the configured window (1h by default).
func (p *Provider) SignVerification(userID string) (string, error) {
	return p.sign(Claims{
		UserID:  userID,
		Purpose: PurposeVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.verificationTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// VerifyVerification validates a verification token and returns the embedded
// user identity.
func (p *Provider) VerifyVerification(tokenStr string) (string, error) {
	claims, err := p.parse(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposeVerification {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

// SignAccess issues a bearer token for an authenticated session.
func (p *Provider) SignAccess(userID, sessionID string) (string, error) {
	return p.sign(Claims{
		UserID:    userID,
		Purpose:   PurposeAccess,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// VerifyAccess validates a bearer token and returns its claims.
func (p *Provider) VerifyAccess(tokenStr string) (*Claims, error) {
	claims, err := p.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != PurposeAccess {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (p *Provider) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *Provider) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
