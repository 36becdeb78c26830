package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

func newTestTokenService(t *testing.T) adapter.TokenService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTokenService("test-secret", persistence.NewSessionStore(client))
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	email := "ana@example.com"

	t.Run("generates a usable pair", func(t *testing.T) {
		svc := newTestTokenService(t)

		pair, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected both tokens to be set")
		}

		claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("access token should validate: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("userID = %v, want %v", claims.UserID, userID)
		}
		if claims.Email != email {
			t.Errorf("email = %q, want %q", claims.Email, email)
		}

		if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Errorf("refresh token should validate: %v", err)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		svc := newTestTokenService(t)

		pair, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("refresh token must not pass access validation")
		}
		if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("access token must not pass refresh validation")
		}
	})

	t.Run("invalidated refresh token is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)

		pair, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
			t.Error("revoked refresh token must be rejected")
		}
	})

	t.Run("invalidating one session leaves others live", func(t *testing.T) {
		svc := newTestTokenService(t)

		first, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.InvalidateRefreshToken(ctx, first.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.ValidateRefreshToken(ctx, second.RefreshToken); err != nil {
			t.Errorf("second session should still be live: %v", err)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)

		if _, err := svc.ValidateAccessToken(ctx, "not-a-token"); err == nil {
			t.Error("expected an error for a malformed token")
		}
	})

	t.Run("a tampered token is rejected", func(t *testing.T) {
		svc := newTestTokenService(t)

		pair, err := svc.GenerateTokenPair(ctx, userID, email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.ValidateAccessToken(ctx, pair.AccessToken+"x"); err == nil {
			t.Error("tampered token must be rejected")
		}
	})
}
