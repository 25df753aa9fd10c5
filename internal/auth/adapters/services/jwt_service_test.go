package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	adapters "authvault/internal/auth/adapters/services"
	"authvault/internal/auth/domain/services"
	svc "authvault/internal/auth/ports/services"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testEmail         = "a@b.com"

	accessTTL  = 3600 * time.Second
	refreshTTL = 43200 * time.Second
)

func newTestService() svc.TokenService {
	return adapters.NewJWT(testAccessSecret, testRefreshSecret, accessTTL, refreshTTL)
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	token, err := svc.CreateAccessToken(ctx, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.VerifyAccessToken(ctx, token))

	email, err := svc.DecodeEmail(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestCreateAndVerifyRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	token, err := svc.CreateRefreshToken(ctx, testEmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.VerifyRefreshToken(ctx, token))

	email, err := svc.DecodeEmail(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestVerifyRejectsTokenSignedWithDifferentSecret(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	other := adapters.NewJWT("another-access-secret", "another-refresh-secret", accessTTL, refreshTTL)

	token, err := other.CreateAccessToken(ctx, testEmail)
	require.NoError(t, err)

	err = svc.VerifyAccessToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidJWTToken)
}

func TestAccessAndRefreshSecretsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	accessToken, err := svc.CreateAccessToken(ctx, testEmail)
	require.NoError(t, err)
	refreshToken, err := svc.CreateRefreshToken(ctx, testEmail)
	require.NoError(t, err)

	// Токен одного типа не проходит проверку секретом другого типа.
	assert.Error(t, svc.VerifyRefreshToken(ctx, accessToken))
	assert.Error(t, svc.VerifyAccessToken(ctx, refreshToken))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	past := time.Now().Add(-2 * accessTTL)
	patch, err := mpatch.PatchMethod(time.Now, func() time.Time { return past })
	require.NoError(t, err)

	token, createErr := svc.CreateAccessToken(ctx, testEmail)

	require.NoError(t, patch.Unpatch())
	require.NoError(t, createErr)

	err = svc.VerifyAccessToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrExpiredJWTToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	err := svc.VerifyAccessToken(ctx, "not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidJWTToken)
}

func TestDecodeEmailDoesNotVerifySignature(t *testing.T) {
	ctx := context.Background()
	other := adapters.NewJWT("another-access-secret", "another-refresh-secret", accessTTL, refreshTTL)
	svc := newTestService()

	token, err := other.CreateAccessToken(ctx, testEmail)
	require.NoError(t, err)

	// decode извлекает email даже из токена с чужой подписью.
	email, err := svc.DecodeEmail(token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}
