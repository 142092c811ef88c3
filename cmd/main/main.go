package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/UnknownOlympus/hrms-lite/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms-lite/internal/metrics"
	"github.com/UnknownOlympus/hrms-lite/internal/repository"
	"github.com/UnknownOlympus/hrms-lite/internal/server"
	"github.com/UnknownOlympus/hrms-lite/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the API server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(nil)

	logger := sl.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	client, err := repository.NewClient(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err) //nolint:gocritic // nothing to clean up yet
	}
	defer func() {
		if err = client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to close MongoDB connection", sl.Err(err))
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	directory := employees.NewDirectory(logger,
		repository.NewEmployeeRepository(db, appMetrics),
		repository.NewAttendanceRepository(db, appMetrics),
	)
	health := server.NewHealthChecker(repository.ClientPinger{Client: client}, logger)

	app := server.New(logger, directory, health, reg, appMetrics)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "database", cfg.Mongo.Database)

	if err = server.Run(ctx, logger, app, cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout); err != nil {
		logger.Error("API server stopped with error", sl.Err(err))
		return
	}

	logger.Info("Application stopped gracefully...")
}
