package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rag-intent-chat/config"
	_ "rag-intent-chat/docs" // Swagger docs
	"rag-intent-chat/internal/app"
	"rag-intent-chat/internal/httpserver"
	"rag-intent-chat/internal/middleware"
	"rag-intent-chat/pkg/log"
)

// @title       RAG Intent Chat API
// @description Intent-routed chat over product manuals and a sales database, with generated file artifacts.
// @version     1
// @host        localhost:8080
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
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting rag-intent-chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Search backend: %s, artifact store: %s, domains: %d",
		cfg.Search.Backend, cfg.Artifact.Store, len(cfg.Domains))

	// 3. Pipeline
	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build application: ", err)
		return
	}
	defer application.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.PerMinute,
			AllowedIPs:       cfg.RateLimit.AllowedIPs,
		},
		App: application,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
