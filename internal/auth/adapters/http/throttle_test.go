package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhttp "authvault/internal/auth/adapters/http"
)

func TestWithMinDuration(t *testing.T) {
	t.Run("Быстрый обработчик задерживается до минимальной длительности", func(t *testing.T) {
		const minDuration = 100 * time.Millisecond

		app := fiber.New()
		app.Get("/fast", authhttp.WithMinDuration(minDuration, func(ctx fiber.Ctx) error {
			return ctx.SendString("ok")
		}))

		start := time.Now()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fast", nil), fiber.TestConfig{
			Timeout: 5 * time.Second,
		})
		elapsed := time.Since(start)

		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.GreaterOrEqual(t, elapsed, minDuration)
	})

	t.Run("Медленный обработчик не задерживается дополнительно", func(t *testing.T) {
		const minDuration = 50 * time.Millisecond

		app := fiber.New()
		app.Get("/slow", authhttp.WithMinDuration(minDuration, func(ctx fiber.Ctx) error {
			time.Sleep(2 * minDuration)
			return ctx.SendString("ok")
		}))

		start := time.Now()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/slow", nil), fiber.TestConfig{
			Timeout: 5 * time.Second,
		})
		elapsed := time.Since(start)

		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Less(t, elapsed, 4*minDuration)
	})

	t.Run("Ошибка обработчика возвращается после задержки", func(t *testing.T) {
		const minDuration = 50 * time.Millisecond

		app := fiber.New()
		app.Get("/error", authhttp.WithMinDuration(minDuration, func(ctx fiber.Ctx) error {
			return fiber.ErrTeapot
		}))

		start := time.Now()
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/error", nil), fiber.TestConfig{
			Timeout: 5 * time.Second,
		})
		elapsed := time.Since(start)

		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
		assert.GreaterOrEqual(t, elapsed, minDuration)
	})
}
