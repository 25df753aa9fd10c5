// Package http содержит компоненты для HTTP сервера.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"authvault/internal/auth/adapters/http/auth"
	"authvault/internal/auth/adapters/http/middleware"
	"authvault/internal/auth/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера. Все маршруты
// аутентификации отвечают не раньше throttleDelay с начала обработки.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, throttleDelay time.Duration) {
	authHandler := auth.NewHandler(authUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	authRoutes := app.Group("/auth")
	authRoutes.Post("/signup", WithMinDuration(throttleDelay, authHandler.SignUp))
	authRoutes.Post("/signin", WithMinDuration(throttleDelay, authHandler.SignIn))
	authRoutes.Get("/verify-access-token/:accessToken", WithMinDuration(throttleDelay, authHandler.VerifyAccessToken))
	authRoutes.Post("/refresh", WithMinDuration(throttleDelay, authHandler.Refresh))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
