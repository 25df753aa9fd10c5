package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// WithMinDuration оборачивает обработчик минимальной длительностью ответа:
// результат возвращается не раньше, чем пройдет minDuration с начала
// обработки. Это нижняя граница задержки, а не ограничение параллелизма:
// обертка ничего не сериализует и не трогает разделяемое состояние.
func WithMinDuration(minDuration time.Duration, handler fiber.Handler) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := handler(ctx)

		if elapsed := time.Since(start); elapsed < minDuration {
			select {
			case <-time.After(minDuration - elapsed):
			case <-ctx.Context().Done():
			}
		}
		return err
	}
}
