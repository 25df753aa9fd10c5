package services

import (
	"context"
)

// TokenService определяет интерфейс для операций с токенами JWT.
type TokenService interface {
	CreateAccessToken(ctx context.Context, email string) (string, error)

	CreateRefreshToken(ctx context.Context, email string) (string, error)

	VerifyAccessToken(ctx context.Context, token string) error

	VerifyRefreshToken(ctx context.Context, token string) error

	// DecodeEmail извлекает email из токена без проверки подписи.
	// Вызывающая сторона обязана предварительно проверить токен.
	DecodeEmail(token string) (string, error)
}
