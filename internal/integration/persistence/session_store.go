// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter"
)

const sessionKeyPrefix = "session:refresh:"

// sessionStore implements adapter.SessionStore on Redis. Expiry is delegated
// to Redis key TTLs, so revoked and expired sessions look the same to callers.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *redis.Client) adapter.SessionStore {
	return &sessionStore{
		client: client,
	}
}

// Put stores a session for the given token ID with a time-to-live.
func (s *sessionStore) Put(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+tokenID, userID.String(), ttl).Err()
}

// Exists reports whether a session for the given token ID is still live.
func (s *sessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, sessionKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the session for the given token ID.
func (s *sessionStore) Remove(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+tokenID).Err()
}
