package userrepo_test

import (
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authvault/internal/auth/adapters/postgres"
)

func TestUserRepository_UpdateRefreshToken(t *testing.T) {
	ctx := newTestContext(t)

	t.Run("Успешное обновление refresh токена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		newToken := "new-refresh-token"
		rows := emptyUserRows().
			AddRow("user-uuid", testEmail, testPasswordHash, newToken, int64(1700000000000))
		mock.ExpectQuery("UPDATE users SET refresh_token = ").
			WithArgs(newToken, testEmail).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		users, err := repo.UpdateRefreshToken(ctx, testEmail, newToken)

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, newToken, users[0].RefreshToken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь с таким email отсутствует", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE users SET refresh_token = ").
			WithArgs("new-refresh-token", "missing@example.com").
			WillReturnRows(emptyUserRows())

		repo := postgres.NewUserRepository(mock)

		users, err := repo.UpdateRefreshToken(ctx, "missing@example.com", "new-refresh-token")

		require.NoError(t, err)
		assert.Empty(t, users)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при обновлении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("UPDATE users SET refresh_token = ").
			WithArgs("new-refresh-token", testEmail).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)

		users, err := repo.UpdateRefreshToken(ctx, testEmail, "new-refresh-token")

		assert.Nil(t, users)
		require.Error(t, err)
		assert.ErrorIs(t, err, postgres.ErrQueryFailed)
		assert.Contains(t, err.Error(), "updating refresh token")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
