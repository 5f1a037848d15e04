// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the granite project.
package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/olegiv/granite-go/internal/auth"
	"github.com/olegiv/granite-go/internal/store"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestLoggerSilent creates a completely silent test logger (error level only).
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestDB creates a temporary test database with migrations applied.
// The database is closed when the test finishes.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "granite-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

// User describes a test user to insert with CreateUser.
type User struct {
	Username string
	Email    string
	Password string
	FullName string
	IsAdmin  bool
}

// CreateUser inserts a user directly through the store and returns its id.
// Empty fields get defaults derived from Username.
func CreateUser(t *testing.T, db *sql.DB, u User) int64 {
	t.Helper()

	if u.Email == "" {
		u.Email = u.Username + "@example.com"
	}
	if u.Password == "" {
		u.Password = "password123"
	}
	if u.FullName == "" {
		u.FullName = "Test " + u.Username
	}

	hash, err := auth.HashPassword(u.Password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	id, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: hash,
		FullName:     u.FullName,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return id
}

// SetAdmin flips the admin flag of a user row. The application never
// updates users, so tests do it with raw SQL.
func SetAdmin(t *testing.T, db *sql.DB, userID int64, admin bool) {
	t.Helper()
	if _, err := db.Exec("UPDATE users SET is_admin = ? WHERE id = ?", admin, userID); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}
}
