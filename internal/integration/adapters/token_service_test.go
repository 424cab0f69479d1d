package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "ana@cohetebrands.mx")
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens should differ")
	}
	if pair.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("got expires_in %d, want %d", pair.ExpiresIn, int64((15 * time.Minute).Seconds()))
	}

	t.Run("access token validates", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("ValidateAccessToken returned error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("got user id %s, want %s", claims.UserID, userID)
		}
		if claims.Email != "ana@cohetebrands.mx" {
			t.Errorf("got email %q", claims.Email)
		}
	})

	t.Run("refresh token validates", func(t *testing.T) {
		claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("ValidateRefreshToken returned error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("got user id %s, want %s", claims.UserID, userID)
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("refresh token accepted as access token, got error %v", err)
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("access token accepted as refresh token, got error %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewTokenService("another-secret", 15*time.Minute, 7*24*time.Hour)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("token signed with different secret accepted, got error %v", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-jwt"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("got error %v, want ErrInvalidToken", err)
		}
	})
}

func TestTokenService_ExpiredToken(t *testing.T) {
	service := NewTokenService("test-secret", -1*time.Minute, 7*24*time.Hour)
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "ana@cohetebrands.mx")
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Fatalf("expired token accepted, got error %v", err)
	}
}
