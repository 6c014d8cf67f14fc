package service

import (
	"fmt"
	"time"

	"ycliu87/Car-Garage/internal/api/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies the signed session tokens carried in the
// session cookie. Tokens are self-contained: validity is the HMAC signature
// plus the embedded expiry, with no server-side session table. Logout is
// therefore client-side only; an issued token stays valid until it expires.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with secret. Tokens expire
// ttl after issuance.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue returns a signed token binding to username.
func (m *TokenManager) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// Verify parses tokenString and returns the username it binds to. Any
// failure (malformed token, bad signature, elapsed expiry) comes back as
// models.ErrUnauthenticated.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", models.ErrUnauthenticated
	}

	return claims.Subject, nil
}
