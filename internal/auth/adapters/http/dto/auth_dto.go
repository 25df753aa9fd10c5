// Package dto содержит объекты передачи данных HTTP слоя.
package dto

// CredentialsRequest содержит учетные данные для регистрации и входа.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// TokenPairResponse содержит пару токенов аутентификации.
// Возвращается вызывающей стороне один раз.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest содержит данные для обновления access токена.
type RefreshRequest struct {
	Email        string `json:"email" validate:"required,email"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshResponse содержит обновленный access токен.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
