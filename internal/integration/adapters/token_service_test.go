// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/scraptrade/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("generated tokens validate and carry the claims", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)

		token, err := service.GenerateAccessToken(ctx, userID, "owner@scraptrade.local")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "owner@scraptrade.local" {
			t.Errorf("expected email owner@scraptrade.local, got %s", claims.Email)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("expected expiry in the future")
		}
	})

	t.Run("expired tokens are rejected as expired", func(t *testing.T) {
		service := NewTokenService("test-secret", -time.Hour)

		// A negative duration would fall back to the default, so build the
		// short-lived service directly.
		expiring := &tokenService{secret: []byte("test-secret"), duration: -time.Hour}
		token, err := expiring.GenerateAccessToken(ctx, userID, "owner@scraptrade.local")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected expired token error, got %v", err)
		}
	})

	t.Run("tokens signed with another secret are invalid", func(t *testing.T) {
		issuer := NewTokenService("other-secret", time.Hour)
		verifier := NewTokenService("test-secret", time.Hour)

		token, err := issuer.GenerateAccessToken(ctx, userID, "owner@scraptrade.local")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := verifier.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)

		if _, err := service.ValidateAccessToken(ctx, "not-a-token"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected invalid token error, got %v", err)
		}
	})
}
