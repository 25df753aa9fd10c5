package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "authvault/internal/auth/adapters/services"
	"authvault/internal/auth/domain/services"
)

const testPassword = "Passw0rd"

func TestHashAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, testPassword, hash)

	ok, err := svc.Verify(ctx, testPassword, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, testPassword)
	require.NoError(t, err)

	ok, err := svc.Verify(ctx, "Wr0ngPass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashesAreSalted(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	first, err := svc.Hash(ctx, testPassword)
	require.NoError(t, err)
	second, err := svc.Hash(ctx, testPassword)
	require.NoError(t, err)

	// Соль генерируется заново при каждом вызове, хэши различаются,
	// но оба проходят проверку.
	assert.NotEqual(t, first, second)

	ok, err := svc.Verify(ctx, testPassword, first)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, testPassword, second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashEmptyPassword(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	_, err := svc.Hash(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidPassword)
}

func TestVerifyEmptyArguments(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, testPassword)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{name: "empty password", password: "", hash: hash},
		{name: "empty hash", password: testPassword, hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.Verify(ctx, tt.password, tt.hash)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrInvalidPassword)
			assert.False(t, ok)
		})
	}
}

func TestVerifyCorruptedHash(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	ok, err := svc.Verify(ctx, testPassword, "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, ok)
}
