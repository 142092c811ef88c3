// Package server exposes the read-only HTTP API over employees together with
// the health and metrics endpoints.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDKey = "requestid"

// Directory is the employee read model served by the API.
type Directory interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, employeeID string) (models.Employee, error)
	Attendance(ctx context.Context, employeeID string) ([]models.Attendance, error)
}

// New builds the Fiber application with every route mounted.
func New(
	log *slog.Logger,
	directory Directory,
	health http.Handler,
	reg *prometheus.Registry,
	metrics *metrics.Metrics,
) *fiber.App {
	log = log.With(slog.String("division", "http"))

	app := fiber.New(fiber.Config{
		AppName:               "hrms-lite",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(log, metrics))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.ErrorContext(c.UserContext(), "panic recovered", "request_id", requestID(c), "panic", e)
		},
	}))

	app.Get("/healthz", adaptor.HTTPHandler(health))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handler := &employeeHandler{log: log, directory: directory}
	api := app.Group("/api/employees")
	api.Get("/", handler.list)
	api.Get("/:employee_id", handler.detail)
	api.Get("/:employee_id/attendance", handler.attendance)

	return app
}

// Run serves app on port until ctx is cancelled, then shuts down within shutdownTimeout.
func Run(ctx context.Context, log *slog.Logger, app *fiber.App, port int, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)

	go func() {
		log.InfoContext(ctx, "Starting API server", "port", port)
		errCh <- app.Listen(fmt.Sprintf(":%d", port))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down API server...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("API server shutdown failed: %w", err)
	}

	return <-errCh
}
