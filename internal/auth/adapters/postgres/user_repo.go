package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"authvault/internal/auth/domain/entities"
	"authvault/internal/auth/domain/services"
	"authvault/internal/auth/ports/repositories"
	"authvault/pkg/logger"
)

// TableUsers - имя таблицы пользователей.
const TableUsers = "users"

// userColumns - колонки таблицы пользователей в порядке их объявления.
const userColumns = "uuid, email, password, refresh_token, created_at"

// uniqueViolationCode - код ошибки PostgreSQL для нарушения уникальности.
const uniqueViolationCode = "23505"

// Константы для сообщений логгера.
const (
	msgCreatingUser     = "creating new user"
	msgUserExists       = "user already exists with email"
	msgUserCreated      = "user created"
	msgInsertNoRows     = "insert returned no rows"
	msgUniqueViolation  = "unique constraint violation on insert"
	errCtxCheckingEmail = "checking existing email"
	errCtxInsertingUser = "inserting user"
	errCtxEmailExists   = "email already exists"
	errCtxQueryingUser  = "querying user by email"
	errCtxUpdatingToken = "updating refresh token"
)

// UserRepository реализует repositories.UserRepository поверх Executor.
type UserRepository struct {
	executor *Executor[entities.User]
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{executor: NewExecutor[entities.User](pool, TableUsers)}
}

// CreateUser создает пользователя с уникальным идентификатором и текущей
// меткой времени. Проверка существования и вставка не атомарны, поэтому
// нарушение уникального ограничения из самой вставки также трактуется как
// конфликт email.
func (r *UserRepository) CreateUser(ctx context.Context, email, passwordHash, refreshToken string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "CreateUser"))
	log.Info(ctx, msgCreatingUser, zap.String("email", email))

	existing, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if len(existing) >= 1 {
		log.Warn(ctx, msgUserExists, zap.String("email", email))
		return false, fmt.Errorf("%s: %w", errCtxEmailExists, services.ErrEmailAlreadyExists)
	}

	fields := []string{"uuid", "email", "password", "refresh_token", "created_at"}
	variables := []interface{}{
		uuid.New().String(),
		email,
		passwordHash,
		refreshToken,
		time.Now().UnixMilli(),
	}
	placeholders := make([]string, 0, len(fields))
	for i := range fields {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	created, err := r.executor.Insert(ctx, Params{
		Query:     strings.Join(fields, ", "),
		Where:     strings.Join(placeholders, ", "),
		Variables: variables,
	})
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn(ctx, msgUniqueViolation, zap.String("email", email))
			return false, fmt.Errorf("%s: %w", errCtxEmailExists, services.ErrEmailAlreadyExists)
		}
		return false, fmt.Errorf("%s: %w", errCtxInsertingUser, err)
	}

	if len(created) != 1 {
		log.Warn(ctx, msgInsertNoRows, zap.String("email", email))
		return false, nil
	}

	log.Info(ctx, msgUserCreated, zap.String("uuid", created[0].UUID))
	return true, nil
}

// GetUserByEmail возвращает всех пользователей с указанным email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) ([]entities.User, error) {
	users, err := r.executor.Query(ctx, Params{
		Query:     userColumns,
		Where:     "email = $1",
		Variables: []interface{}{email},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxQueryingUser, err)
	}
	return users, nil
}

// UpdateRefreshToken перезаписывает сохраненный refresh токен пользователя
// и возвращает обновленные записи.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, email, refreshToken string) ([]entities.User, error) {
	users, err := r.executor.Update(ctx, Params{
		Query:     "refresh_token = $1",
		Where:     "email = $2",
		Variables: []interface{}{refreshToken, email},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingToken, err)
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
