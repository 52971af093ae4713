// Package token signs and verifies the form-session cookie value.
// The cookie carries only a session identifier; all form state stays
// server-side. Signing lets the server reject forged or stale cookies
// before touching the database.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/model"
)

// Claims represents the signed form-session cookie payload.
type Claims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"sid"`
}

// FormToken signs form-session identifiers with symmetric HMAC.
type FormToken struct {
	secretKey string
}

// NewFormToken creates a signer with the provided secret key.
func NewFormToken(secretKey string) *FormToken {
	return &FormToken{secretKey: secretKey}
}

// Sign wraps a form-session ID into a signed token valid for the
// form-session TTL.
func (f *FormToken) Sign(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(model.FormSessionDuration)),
		},
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString([]byte(f.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign form token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a signed token and extracts the form-session ID.
func (f *FormToken) Parse(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(f.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse form token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("form token is invalid")
	}
	if claims.SessionID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("form token has no session id")
	}
	return claims.SessionID, nil
}
