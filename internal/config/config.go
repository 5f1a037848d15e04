// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
)

// knownWeakPasswords contains example admin passwords that must be rejected in production.
var knownWeakPasswords = []string{
	"arihantadmin",
	"changeme",
	"admin123",
}

// Supported database drivers.
const (
	DriverModernc = "sqlite"  // modernc.org/sqlite, pure Go
	DriverMattn   = "sqlite3" // github.com/mattn/go-sqlite3, cgo
)

// MinAdminPasswordLength matches the minimum password length enforced at registration.
const MinAdminPasswordLength = 6

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver      string `env:"GRANITE_DB_DRIVER" envDefault:"sqlite"`
	DBPath        string `env:"GRANITE_DB_PATH" envDefault:"./data/granite.db"`
	AdminPassword string `env:"GRANITE_ADMIN_PASSWORD,required"`
	ServerHost    string `env:"GRANITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"GRANITE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"GRANITE_ENV" envDefault:"development"`
	LogLevel      string `env:"GRANITE_LOG_LEVEL" envDefault:"info"`

	StaticDir  string `env:"GRANITE_STATIC_DIR" envDefault:"./static"`
	GalleryDir string `env:"GRANITE_GALLERY_DIR" envDefault:"./static/img/Arihant"`

	UploadMaxBytes int64 `env:"GRANITE_UPLOAD_MAX_BYTES" envDefault:"10485760"` // 10 MB

	// StoreTimeout bounds every request except photo uploads, and with it every store round trip.
	StoreTimeout time.Duration `env:"GRANITE_STORE_TIMEOUT" envDefault:"5s"`

	// SessionLifetime caps both the browser cookie and the age of a login session.
	// Zero keeps login sessions until logout.
	SessionLifetime time.Duration `env:"GRANITE_SESSION_LIFETIME" envDefault:"24h"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DBDriver != DriverModernc && cfg.DBDriver != DriverMattn {
		return nil, fmt.Errorf("GRANITE_DB_DRIVER must be %q or %q, got %q",
			DriverModernc, DriverMattn, cfg.DBDriver)
	}

	if n := utf8.RuneCountInString(cfg.AdminPassword); n < MinAdminPasswordLength {
		return nil, fmt.Errorf("GRANITE_ADMIN_PASSWORD must be at least %d characters long, got %d",
			MinAdminPasswordLength, n)
	}

	for _, weak := range knownWeakPasswords {
		if cfg.AdminPassword != weak {
			continue
		}
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("GRANITE_ADMIN_PASSWORD is a known default value and must not be used outside development")
		}
		slog.Warn("GRANITE_ADMIN_PASSWORD is a known default value; set a unique password before deploying")
	}

	if cfg.UploadMaxBytes <= 0 {
		return nil, fmt.Errorf("GRANITE_UPLOAD_MAX_BYTES must be positive, got %d", cfg.UploadMaxBytes)
	}
	if cfg.StoreTimeout <= 0 {
		return nil, fmt.Errorf("GRANITE_STORE_TIMEOUT must be positive, got %s", cfg.StoreTimeout)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
