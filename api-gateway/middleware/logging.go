package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayse/sweetshop/pkg/logger"
)

// StructuredLoggingMiddleware logs gateway requests with trace correlation
func StructuredLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		statusCode := c.Response().StatusCode()
		logEvent := logger.Info(c.UserContext())
		if statusCode >= 500 {
			logEvent = logger.Error(c.UserContext())
		} else if statusCode >= 400 {
			logEvent = logger.Warn(c.UserContext())
		}

		logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", c.Get("X-Request-Id")).
			Msg("Gateway request completed")

		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("Gateway request error")
		}

		return err
	}
}
