// Package services содержит реализации сервисов токенов и паролей.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"authvault/internal/auth/domain/services"
	svc "authvault/internal/auth/ports/services"
	"authvault/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodCreateAccessToken  = "CreateAccessToken"
	methodCreateRefreshToken = "CreateRefreshToken"
	methodVerifyToken        = "VerifyToken"

	msgCreatingToken  = "creating token"
	msgTokenCreated   = "token created successfully"
	msgTokenVerified  = "token verified successfully"
	msgTokenExpired   = "token has expired"
	msgInvalidToken   = "invalid token"
	msgEmptySecretKey = "empty secret key provided"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken      = "error parsing token"
	errCtxCreatingToken  = "creating token"
	errCtxVerifyingToken = "verifying token"
	errCtxDecodingToken  = "decoding token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims определяет полезную нагрузку токена: email владельца плюс
// стандартные зарегистрированные утверждения.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService с раздельными секретами
// для access и refresh токенов.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(accessSecret, refreshSecret string, accessTokenTTL, refreshTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			AccessSecret:    []byte(accessSecret),
			RefreshSecret:   []byte(refreshSecret),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
	}
}

// CreateAccessToken подписывает access токен со сроком жизни access TTL.
func (s *ServiceJWT) CreateAccessToken(ctx context.Context, email string) (string, error) {
	return s.createToken(ctx, methodCreateAccessToken, email, s.config.AccessSecret, s.config.AccessTokenTTL)
}

// CreateRefreshToken подписывает refresh токен со сроком жизни refresh TTL.
func (s *ServiceJWT) CreateRefreshToken(ctx context.Context, email string) (string, error) {
	return s.createToken(ctx, methodCreateRefreshToken, email, s.config.RefreshSecret, s.config.RefreshTokenTTL)
}

// VerifyAccessToken проверяет подпись и срок действия access токена.
func (s *ServiceJWT) VerifyAccessToken(ctx context.Context, token string) error {
	return s.verifyToken(ctx, token, s.config.AccessSecret)
}

// VerifyRefreshToken проверяет подпись и срок действия refresh токена.
func (s *ServiceJWT) VerifyRefreshToken(ctx context.Context, token string) error {
	return s.verifyToken(ctx, token, s.config.RefreshSecret)
}

// DecodeEmail извлекает email из полезной нагрузки без проверки подписи.
// Не является границей доверия: вызывающая сторона обязана сначала
// проверить токен.
func (s *ServiceJWT) DecodeEmail(tokenString string) (string, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("%s: %w: %w", errCtxDecodingToken, services.ErrInvalidJWTToken, err)
	}
	return claims.Email, nil
}

func (s *ServiceJWT) createToken(ctx context.Context, method, email string, secret []byte, ttl time.Duration) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", method),
		zap.String("email", email),
	)
	log.Debug(ctx, msgCreatingToken)

	if len(secret) == 0 {
		log.Error(ctx, msgEmptySecretKey)
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxCreatingToken, services.ErrGeneratingJWTToken)
	}

	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxCreatingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenCreated)
	return tokenString, nil
}

func (s *ServiceJWT) verifyToken(ctx context.Context, tokenString string, secret []byte) error {
	log := logger.Log(ctx).With(zap.String("method", methodVerifyToken))

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken, err)
	}

	if !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenVerified)
	return nil
}
