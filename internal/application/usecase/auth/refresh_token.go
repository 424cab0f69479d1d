package auth

import (
	"context"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
	domainerror "github.com/cohetebrands/backoffice/internal/domain/error"
)

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates the refresh token and issues a fresh pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email)
}
