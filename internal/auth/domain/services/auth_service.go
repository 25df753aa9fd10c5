package services

import "errors"

// Ошибки домена аутентификации. Каждая соответствует определенному
// ответу протокола: Conflict, BadRequest или Unauthorized.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrBadSignUpRequest      = errors.New("bad user sign-up request")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication tokens")
)

// TokenPair представляет пару токенов аутентификации.
// Возвращается вызывающей стороне один раз и нигде не сохраняется.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
