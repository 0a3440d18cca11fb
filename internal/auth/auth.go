package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenGenerator signs and verifies the bearer token handed out at login.
type TokenGenerator interface {
	GenerateSessionToken(sessionID string, expiresAt time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims represents JWT token claims
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret []byte
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	Section   Section   `json:"section"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse is the view of the caller's session.
type SessionResponse struct {
	SessionID     string    `json:"session_id"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	Section       Section   `json:"section"`
	StartedAt     time.Time `json:"started_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s Session) ToResponse(username string) SessionResponse {
	return SessionResponse{
		SessionID:     s.ID,
		Username:      username,
		Authenticated: s.Authenticated,
		Section:       s.Section,
		StartedAt:     s.StartedAt,
		ExpiresAt:     s.ExpiresAt,
	}
}
