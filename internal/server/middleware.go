package server

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// requestLogger writes one log line per request and counts it by matched route.
func requestLogger(log *slog.Logger, metrics *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			// Let the error handler pick the status before it is recorded.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		attrs := []any{
			slog.String("request_id", requestID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.ErrorContext(c.UserContext(), "request completed", attrs...)
		case status >= fiber.StatusBadRequest:
			log.WarnContext(c.UserContext(), "request completed", attrs...)
		default:
			log.DebugContext(c.UserContext(), "request completed", attrs...)
		}

		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// errorHandler renders routing errors and unexpected failures in the response envelope.
func errorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.ErrorContext(c.UserContext(), "unhandled request error", "request_id", requestID(c), "error", err)
		}

		return failure(c, code, message)
	}
}
