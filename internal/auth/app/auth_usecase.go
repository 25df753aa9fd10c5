// Package app реализует сценарии использования сервиса аутентификации.
package app

import (
	"context"
	"fmt"
	"regexp"
	"unicode"

	"authvault/internal/auth/domain/entities"
	"authvault/internal/auth/domain/services"
	"authvault/internal/auth/ports/api"
	"authvault/internal/auth/ports/repositories"
	svc "authvault/internal/auth/ports/services"
	"authvault/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodSignUp             = "SignUp"
	methodSignIn             = "SignIn"
	methodVerifyAccessToken  = "VerifyAccessToken"
	methodRefreshAccessToken = "RefreshAccessToken"

	msgStartSignUp         = "starting user sign-up"
	msgInvalidEmailFormat  = "invalid email format"
	msgInvalidPassword     = "invalid password"
	msgUserNotCreated      = "storage did not create user row"
	msgUserSignedUp        = "user signed up successfully"
	msgSignInAttempt       = "sign-in attempt"
	msgSignInNonExistent   = "sign-in attempt with unknown email"
	msgPasswordMismatch    = "password does not match stored hash"
	msgUserSignedIn        = "user signed in successfully"
	msgVerifyingToken      = "verifying access token"
	msgTokenRejected       = "access token rejected"
	msgRefreshingToken     = "refreshing access token"
	msgRefreshMismatch     = "presented refresh token does not match stored token"
	msgRefreshVerifyFailed = "refresh token verification failed"
	msgAccessTokenRenewed  = "access token renewed"

	msgErrHashPassword   = "failed to hash password"
	msgErrCreateUser     = "failed to create user"
	msgErrFindingUser    = "error finding user by email"
	msgErrVerifyPassword = "error verifying password"
	msgErrGenerateTokens = "failed to generate tokens"

	errCtxValidatingEmail     = "validating email"
	errCtxValidatingPassword  = "validating password"
	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating user"
	errCtxBadSignUp           = "sign-up rejected by storage"
	errCtxGeneratingTokens    = "generating tokens"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding user"
	errCtxVerifyingPassword   = "verifying password"
	errCtxInvalidRefreshToken = "invalid refresh token"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// SignUp регистрирует пользователя. Refresh токен выпускается до создания
// записи и сохраняется вместе с ней. Пароль хэшируется перед сохранением.
func (a *AuthUseCaseImpl) SignUp(ctx context.Context, email, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignUp), zap.String("email", email))
	log.Debug(ctx, msgStartSignUp)

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	refreshToken, err := a.tokenSvc.CreateRefreshToken(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	passwordHash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	created, err := a.userRepo.CreateUser(ctx, email, passwordHash, refreshToken)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}
	if !created {
		log.Warn(ctx, msgUserNotCreated)
		return nil, fmt.Errorf("%s: %w", errCtxBadSignUp, services.ErrBadSignUpRequest)
	}

	accessToken, err := a.tokenSvc.CreateAccessToken(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserSignedUp)
	return &services.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// SignIn аутентифицирует пользователя по email и паролю.
func (a *AuthUseCaseImpl) SignIn(ctx context.Context, email, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignIn), zap.String("email", email))
	log.Debug(ctx, msgSignInAttempt)

	users, err := a.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if len(users) == 0 || users[0].Email != email {
		log.Debug(ctx, msgSignInNonExistent)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, users[0].Password)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgPasswordMismatch)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	accessToken, err := a.tokenSvc.CreateAccessToken(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}
	refreshToken, err := a.tokenSvc.CreateRefreshToken(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserSignedIn)
	return &services.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken сводит любую ошибку проверки к бинарному разрешению.
func (a *AuthUseCaseImpl) VerifyAccessToken(ctx context.Context, token string) bool {
	log := logger.Log(ctx).With(zap.String("method", methodVerifyAccessToken))
	log.Debug(ctx, msgVerifyingToken)

	if err := a.tokenSvc.VerifyAccessToken(ctx, token); err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return false
	}
	return true
}

// RefreshAccessToken выпускает новый access токен по действующему refresh
// токену. Несовпадение с сохраненным токеном выявляет устаревший или
// повторно использованный refresh токен.
func (a *AuthUseCaseImpl) RefreshAccessToken(ctx context.Context, email, refreshToken string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshAccessToken), zap.String("email", email))
	log.Debug(ctx, msgRefreshingToken)

	users, err := a.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if len(users) == 0 || users[0].RefreshToken != refreshToken {
		log.Debug(ctx, msgRefreshMismatch)
		return "", fmt.Errorf("%s: %w", errCtxInvalidRefreshToken, services.ErrInvalidRefreshToken)
	}

	if err := a.tokenSvc.VerifyRefreshToken(ctx, refreshToken); err != nil {
		log.Debug(ctx, msgRefreshVerifyFailed, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxInvalidRefreshToken, services.ErrInvalidRefreshToken)
	}

	accessToken, err := a.tokenSvc.CreateAccessToken(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgAccessTokenRenewed)
	return accessToken, nil
}

// GetValidatePasswordFunc экспортирует функцию validatePassword для тестирования.
func GetValidatePasswordFunc() func(string) error {
	return validatePassword
}

// GetValidateEmailFunc экспортирует функцию validateEmail для тестирования.
func GetValidateEmailFunc() func(string) error {
	return validateEmail
}

// Валидация email.
func validateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// Валидация пароля: длина в пределах [8, 32], буквы в обоих регистрах и
// хотя бы одна цифра или символ.
func validatePassword(password string) error {
	if len(password) < services.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	if len(password) > services.MaxPasswordLength {
		return entities.ErrPasswordTooLong
	}

	var hasUpper, hasLower, hasDigitOrSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		default:
			if !unicode.IsLetter(r) {
				hasDigitOrSymbol = true
			}
		}
	}

	if !hasUpper || !hasLower {
		return entities.ErrPasswordNoMixedCase
	}
	if !hasDigitOrSymbol {
		return entities.ErrPasswordTooWeak
	}
	return nil
}
