package authusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"authvault/internal/auth/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, email, passwordHash, refreshToken string) (bool, error) {
	args := m.Called(ctx, email, passwordHash, refreshToken)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) ([]entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, email, refreshToken string) ([]entities.User, error) {
	args := m.Called(ctx, email, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) CreateAccessToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) CreateRefreshToken(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) VerifyAccessToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenService) VerifyRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockTokenService) DecodeEmail(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
