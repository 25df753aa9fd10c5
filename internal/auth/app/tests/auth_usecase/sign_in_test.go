package authusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authvault/internal/auth/app"
	"authvault/internal/auth/domain/entities"
	"authvault/internal/auth/domain/services"
)

func TestSignIn(t *testing.T) {
	testEmail := "a@b.com"
	testPassword := "Passw0rd"
	hashedPassword := "$2a$10$hashed"
	accessToken := "access-token-123"
	refreshToken := "refresh-token-456"

	storedUser := entities.User{
		UUID:         "uuid-1",
		Email:        testEmail,
		Password:     hashedPassword,
		RefreshToken: "old-refresh-token",
		CreatedAt:    1700000000000,
	}

	tests := []struct {
		name        string
		setupMocks  func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService)
		expectedErr error
	}{
		{
			name: "success - user signed in",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, mockTokenSvc *mockTokenService) {
				mockUserRepo.On("GetUserByEmail", mock.Anything, testEmail).
					Return([]entities.User{storedUser}, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
				mockTokenSvc.On("CreateAccessToken", mock.Anything, testEmail).Return(accessToken, nil).Once()
				mockTokenSvc.On("CreateRefreshToken", mock.Anything, testEmail).Return(refreshToken, nil).Once()
			},
		},
		{
			name: "error - unknown email",
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("GetUserByEmail", mock.Anything, testEmail).
					Return([]entities.User{}, nil).Once()
			},
			expectedErr: services.ErrInvalidCredentials,
		},
		{
			name: "error - password does not match stored hash",
			setupMocks: func(mockUserRepo *mockUserRepository, mockPasswordSvc *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("GetUserByEmail", mock.Anything, testEmail).
					Return([]entities.User{storedUser}, nil).Once()
				mockPasswordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(false, nil).Once()
			},
			expectedErr: services.ErrInvalidCredentials,
		},
		{
			name: "error - storage failure propagated",
			setupMocks: func(mockUserRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				mockUserRepo.On("GetUserByEmail", mock.Anything, testEmail).
					Return(nil, ErrStorageUnavailable).Once()
			},
			expectedErr: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)
			tt.setupMocks(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			useCase := app.NewAuthUseCase(mockUserRepo, mockPasswordSvc, mockTokenSvc)

			pair, err := useCase.SignIn(context.Background(), testEmail, testPassword)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				require.NotNil(t, pair)
				assert.Equal(t, accessToken, pair.AccessToken)
				assert.Equal(t, refreshToken, pair.RefreshToken)
			}

			mockUserRepo.AssertExpectations(t)
			mockPasswordSvc.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}
