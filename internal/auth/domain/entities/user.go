package entities

import "errors"

// Ошибки валидации учетных данных.
var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must contain at least 8 characters")
	ErrPasswordTooLong     = errors.New("password must contain at most 32 characters")
	ErrPasswordNoMixedCase = errors.New("password must contain upper and lower case letters")
	ErrPasswordTooWeak     = errors.New("password must contain at least one digit or symbol")
)

// User представляет запись пользователя в таблице users.
// CreatedAt хранится в миллисекундах с начала эпохи.
type User struct {
	UUID         string
	Email        string
	Password     string
	RefreshToken string
	CreatedAt    int64
}

// Credentials представляет входные учетные данные запроса аутентификации.
type Credentials struct {
	Email    string
	Password string
}
