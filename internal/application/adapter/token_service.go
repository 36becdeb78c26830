// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair and
	// registers the refresh token in the session store.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token against the session store
	// and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken removes a refresh token from the session store.
	InvalidateRefreshToken(ctx context.Context, token string) error
}

// SessionStore persists refresh-token sessions with an expiry.
type SessionStore interface {
	// Put stores a session for the given token ID with a time-to-live.
	Put(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error

	// Exists reports whether a session for the given token ID is still live.
	Exists(ctx context.Context, tokenID string) (bool, error)

	// Remove deletes the session for the given token ID.
	Remove(ctx context.Context, tokenID string) error
}
