// Package auth содержит HTTP обработчики сервиса аутентификации.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"authvault/internal/auth/adapters/http/dto"
	"authvault/internal/auth/domain/entities"
	"authvault/internal/auth/domain/services"
	"authvault/internal/auth/ports/api"
	"authvault/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignUp            = "auth handler: sign up"
	LogHandlerSignIn            = "auth handler: sign in"
	LogHandlerVerifyAccessToken = "auth handler: verify access token"
	LogHandlerRefresh           = "auth handler: refresh access token"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// statusForError переводит доменную ошибку в статус HTTP ответа:
// конфликт email в 409, отказ в аутентификации в 401, остальное в 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrBadSignUpRequest),
		errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrPasswordTooShort),
		errors.Is(err, entities.ErrPasswordTooLong),
		errors.Is(err, entities.ErrPasswordNoMixedCase),
		errors.Is(err, entities.ErrPasswordTooWeak):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// SignUp обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) SignUp(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignUp)

	var req dto.CredentialsRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	pair, err := h.authUseCase.SignUp(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusForError(err), err.Error())
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// SignIn обрабатывает запрос на вход пользователя.
func (h *Handler) SignIn(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignIn)

	var req dto.CredentialsRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	pair, err := h.authUseCase.SignIn(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusForError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// VerifyAccessToken обрабатывает запрос проверки access токена.
// Ответ всегда булев, ошибок проверки наружу не бывает.
func (h *Handler) VerifyAccessToken(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerVerifyAccessToken)

	accessToken := ctx.Params("accessToken")

	valid := h.authUseCase.VerifyAccessToken(requestCtx, accessToken)

	if err := ctx.Status(http.StatusOK).JSON(valid); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Refresh обрабатывает запрос обновления access токена.
func (h *Handler) Refresh(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefresh)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.RefreshToken == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and refreshToken are required")
	}

	accessToken, err := h.authUseCase.RefreshAccessToken(requestCtx, req.Email, req.RefreshToken)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, statusForError(err), err.Error())
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.RefreshResponse{AccessToken: accessToken}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
