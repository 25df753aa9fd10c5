package api

import (
	"context"

	"authvault/internal/auth/domain/services"
)

// AuthUseCase определяет API сервиса аутентификации.
type AuthUseCase interface {
	SignUp(ctx context.Context, email, password string) (*services.TokenPair, error)

	SignIn(ctx context.Context, email, password string) (*services.TokenPair, error)

	// VerifyAccessToken возвращает false при любой ошибке проверки,
	// никогда не возвращает ошибку.
	VerifyAccessToken(ctx context.Context, token string) bool

	RefreshAccessToken(ctx context.Context, email, refreshToken string) (string, error)
}
