package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request correlation identifier.
const HeaderRequestID = "X-Request-Id"

// WithRequestID propagates the caller's request ID or assigns a fresh one,
// echoing it on the response.
func WithRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(HeaderRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}

// WithLogging writes one structured access-log line per request.
func WithLogging(logger *zap.Logger) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		requestID, _ := c.Locals(HeaderRequestID).(string)

		logger.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("size", len(c.Response().Body())),
		)

		return err
	}
}
