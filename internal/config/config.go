// Package config provides centralized configuration management for the
// console. It loads settings from environment variables with sensible
// defaults and validates everything on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds all console configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Storage  StorageConfig
	Audit    AuditConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings for the console itself.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// APIConfig holds resource backend settings.
type APIConfig struct {
	// BaseURL is the resource API root (required)
	// Supports both THRIVE_API_URL and API_BASE_URL for compatibility
	BaseURL string `env:"THRIVE_API_URL" envAlt:"API_BASE_URL" required:"true"`

	// AdminSecret is the shared-admin-secret header value (required)
	AdminSecret string `env:"THRIVE_ADMIN_SECRET" required:"true"`

	// Timeout guards list and detail fetches (default: 6s)
	Timeout time.Duration `env:"API_TIMEOUT" default:"6s"`
}

// StorageConfig holds image storage collaborator settings.
// An empty Endpoint disables image upload entirely.
type StorageConfig struct {
	// Endpoint is the storage service root
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Bucket is the target bucket for uploads (default: vendor-assets)
	Bucket string `env:"STORAGE_BUCKET" default:"vendor-assets"`

	// PublicPrefix is the URL prefix returned by the storage service;
	// deletion derives object paths by stripping it
	PublicPrefix string `env:"STORAGE_PUBLIC_PREFIX"`

	// Secret is the storage endpoint's shared secret
	Secret string `env:"STORAGE_SECRET"`

	// Timeout bounds upload and delete calls (default: 15s)
	Timeout time.Duration `env:"STORAGE_TIMEOUT" default:"15s"`
}

// AuditConfig holds the optional mutation-trail database settings.
// An empty DatabaseURL disables the trail.
type AuditConfig struct {
	// DatabaseURL is the PostgreSQL connection string
	// Supports both AUDIT_DATABASE_URL and DATABASE_URL for compatibility
	DatabaseURL string `env:"AUDIT_DATABASE_URL" envAlt:"DATABASE_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 5)
	MaxConns int `env:"AUDIT_DB_MAX_CONNS" default:"5"`
}

// SecurityConfig holds console access settings.
type SecurityConfig struct {
	// ConsoleSecret, when set, is required in the X-Console-Key header of
	// every request. Empty disables the check (local development).
	ConsoleSecret string `env:"CONSOLE_SECRET"`

	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + strconv.Itoa(c.Port)
	}
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// StorageEnabled reports whether an image storage endpoint is configured.
func (c *StorageConfig) StorageEnabled() bool {
	return c.Endpoint != ""
}

// AuditEnabled reports whether the mutation trail is configured.
func (c *AuditConfig) AuditEnabled() bool {
	return c.DatabaseURL != ""
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Backend validation
	if c.API.BaseURL == "" {
		errs = append(errs, "THRIVE_API_URL is required")
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("THRIVE_API_URL (%q) must be an absolute URL", c.API.BaseURL))
	}
	if c.API.AdminSecret == "" {
		errs = append(errs, "THRIVE_ADMIN_SECRET is required")
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, "API_TIMEOUT must be positive")
	}

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	// Storage validation (only when enabled)
	if c.Storage.StorageEnabled() {
		if u, err := url.Parse(c.Storage.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("STORAGE_ENDPOINT (%q) must be an absolute URL", c.Storage.Endpoint))
		}
		if c.Storage.PublicPrefix == "" {
			errs = append(errs, "STORAGE_PUBLIC_PREFIX is required when STORAGE_ENDPOINT is set")
		}
	}

	// Audit validation (only when enabled)
	if c.Audit.AuditEnabled() && c.Audit.MaxConns <= 0 {
		errs = append(errs, "AUDIT_DB_MAX_CONNS must be positive")
	}

	// Logging validation
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be debug, info, warn, or error", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
