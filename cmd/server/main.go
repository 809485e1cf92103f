package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/config"
	"github.com/thrive-platform/admin-console/internal/console"
	_ "github.com/thrive-platform/admin-console/internal/entity" // Register all entities
	"github.com/thrive-platform/admin-console/internal/logging"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/storage"
	"github.com/thrive-platform/admin-console/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"api_base_url", cfg.API.BaseURL,
		"storage_enabled", cfg.Storage.StorageEnabled(),
		"audit_enabled", cfg.Audit.AuditEnabled(),
	)

	// Resource backend client
	client := api.NewClient(cfg.API.BaseURL, cfg.API.AdminSecret, cfg.API.Timeout, nil)

	// Optional image storage collaborator
	var images *storage.Client
	if cfg.Storage.StorageEnabled() {
		images = storage.NewClient(
			cfg.Storage.Endpoint,
			cfg.Storage.Bucket,
			cfg.Storage.PublicPrefix,
			cfg.Storage.Secret,
			cfg.Storage.Timeout,
		)
	}

	// Optional mutation trail
	ctx := context.Background()
	var trail *audit.Recorder
	if cfg.Audit.AuditEnabled() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Audit.DatabaseURL)
		if err != nil {
			slog.Error("failed to parse audit database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Audit.MaxConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to audit database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping audit database", "error", err)
			os.Exit(1)
		}
		trail = audit.NewRecorder(pool)
		slog.Info("audit trail enabled")
	}

	// Log registered entities
	slog.Info("entities registered", "count", reconcile.Count())
	for _, def := range reconcile.All() {
		slog.Debug("entity", "key", def.Key, "fields", len(def.Fields), "steps", len(def.Steps))
	}

	service := console.NewService(client, images, trail)
	server := web.NewServer(service, trail, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
