package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-tracker/config"
	_ "productivity-tracker/docs" // Swagger docs
	"productivity-tracker/internal/bootstrap"
	"productivity-tracker/internal/httpserver"
	"productivity-tracker/internal/middleware"
	"productivity-tracker/internal/scheduler"
	"productivity-tracker/pkg/log"
)

// @title       Productivity Tracker API
// @description Task logging, AI weekly summaries, summary search and productivity analytics.
// @version     1
// @host        localhost:8000
// @BasePath    /api
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		File: log.FileConfig{
			Path:       cfg.Logger.File.Path,
			MaxSizeMB:  cfg.Logger.File.MaxSizeMB,
			MaxBackups: cfg.Logger.File.MaxBackups,
			MaxAgeDays: cfg.Logger.File.MaxAgeDays,
			Compress:   cfg.Logger.File.Compress,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Tracker...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Timezone)

	// 3. Storage, AI clients and use cases
	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close database: %v", err)
		}
	}()

	// 4. Scheduler
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(logger, app.Summary, app.Calendar, scheduler.Config{
			WeeklySummarySpec: cfg.Scheduler.WeeklySummarySpec,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize scheduler: ", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Info(ctx, "Scheduler disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIPrefix:       cfg.HTTPServer.APIPrefix,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.CORS, cfg.RateLimit),
		DB:              app.DB,
		Calendar:        app.Calendar,
		TaskUC:          app.Task,
		SummaryUC:       app.Summary,
		AnalyticsUC:     app.Analytics,
		AdminUC:         app.Admin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
