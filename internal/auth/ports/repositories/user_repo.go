package repositories

import (
	"context"

	"authvault/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
type UserRepository interface {
	// CreateUser создает пользователя и возвращает true, если вставка
	// вернула ровно одну строку. Дубликат email возвращает
	// services.ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, email, passwordHash, refreshToken string) (bool, error)

	// GetUserByEmail возвращает ноль или более совпадений.
	// Пустой список означает "не найдено".
	GetUserByEmail(ctx context.Context, email string) ([]entities.User, error)

	// UpdateRefreshToken перезаписывает сохраненный refresh токен пользователя.
	UpdateRefreshToken(ctx context.Context, email, refreshToken string) ([]entities.User, error)
}
