package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"revlens/internal/config"
	"revlens/internal/core"
	apphttp "revlens/internal/http"
	applog "revlens/internal/log"
	"revlens/internal/services"
	ports "revlens/internal/sheets"
	gsheet "revlens/internal/sheets/google"
	mem "revlens/internal/sheets/memory"
)

func main() {
	// A local .env is a convenience for development; absent is fine.
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     logLevel(),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}
	if err := core.ValidateTables(); err != nil {
		logger.Error("Invalid category tables", applog.FieldError, err)
		os.Exit(1)
	}

	var reader ports.TableReader
	switch cfg.DataBackend {
	case "sheets":
		cli, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client",
				applog.FieldError, err, "backend", cfg.DataBackend)
			os.Exit(1)
		}
		reader = cli
		logger.Info("Initialized Google Sheets backend", "backend", cfg.DataBackend)
	default:
		reader = mem.NewSample()
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	}

	reconciler := services.NewReconcileService(reader, cfg.RevenueSheetName, cfg.ExpenseSheetName, logger)

	srv := apphttp.NewServer(":"+cfg.Port, reconciler, apphttp.Options{
		QueryCacheSize: cfg.QueryCacheSize,
		QueryCacheTTL:  cfg.QueryCacheTTL,
		TopProducts:    cfg.TopProducts,
		Logger:         logger,
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting revlens server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
