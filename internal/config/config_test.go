// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setEnv(t, "GRANITE_ADMIN_PASSWORD", "s3cure-Admin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBDriver != DriverModernc {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, DriverModernc)
	}
	if cfg.DBPath != "./data/granite.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/granite.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.GalleryDir != "./static/img/Arihant" {
		t.Errorf("GalleryDir = %q, want %q", cfg.GalleryDir, "./static/img/Arihant")
	}
	if cfg.StoreTimeout != 5*time.Second {
		t.Errorf("StoreTimeout = %s, want 5s", cfg.StoreTimeout)
	}
	if cfg.SessionLifetime != 24*time.Hour {
		t.Errorf("SessionLifetime = %s, want 24h", cfg.SessionLifetime)
	}
	if cfg.UploadMaxBytes != 10<<20 {
		t.Errorf("UploadMaxBytes = %d, want %d", cfg.UploadMaxBytes, 10<<20)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "GRANITE_ADMIN_PASSWORD", "another-Secret9")
	setEnv(t, "GRANITE_DB_DRIVER", "sqlite3")
	setEnv(t, "GRANITE_DB_PATH", "/custom/path.db")
	setEnv(t, "GRANITE_SERVER_HOST", "0.0.0.0")
	setEnv(t, "GRANITE_SERVER_PORT", "3000")
	setEnv(t, "GRANITE_ENV", "production")
	setEnv(t, "GRANITE_LOG_LEVEL", "debug")
	setEnv(t, "GRANITE_STORE_TIMEOUT", "2s")
	setEnv(t, "GRANITE_SESSION_LIFETIME", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBDriver != DriverMattn {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, DriverMattn)
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.StoreTimeout != 2*time.Second {
		t.Errorf("StoreTimeout = %s, want 2s", cfg.StoreTimeout)
	}
	if cfg.SessionLifetime != 0 {
		t.Errorf("SessionLifetime = %s, want 0", cfg.SessionLifetime)
	}
}

func TestLoad_MissingAdminPassword(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without GRANITE_ADMIN_PASSWORD")
	}
}

func TestLoad_ShortAdminPassword(t *testing.T) {
	os.Clearenv()
	setEnv(t, "GRANITE_ADMIN_PASSWORD", "abc")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a short admin password")
	}
}

func TestLoad_WeakAdminPassword(t *testing.T) {
	t.Run("production rejects", func(t *testing.T) {
		os.Clearenv()
		setEnv(t, "GRANITE_ADMIN_PASSWORD", "arihantadmin")
		setEnv(t, "GRANITE_ENV", "production")

		if _, err := Load(); err == nil {
			t.Fatal("Load() should reject a known default password in production")
		}
	})

	t.Run("development warns", func(t *testing.T) {
		os.Clearenv()
		setEnv(t, "GRANITE_ADMIN_PASSWORD", "arihantadmin")

		if _, err := Load(); err != nil {
			t.Fatalf("Load() error: %v", err)
		}
	})
}

func TestLoad_UnknownDriver(t *testing.T) {
	os.Clearenv()
	setEnv(t, "GRANITE_ADMIN_PASSWORD", "s3cure-Admin")
	setEnv(t, "GRANITE_DB_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject an unknown driver")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (Config{LogLevel: tt.level}).SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
