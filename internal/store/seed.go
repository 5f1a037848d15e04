// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/granite-go/internal/auth"
)

// Bootstrap admin account. The password always comes from configuration.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@arihantgranite.com"
	DefaultAdminName     = "Arihant Admin"
)

// Bootstrap prepares the database before the first request is served:
// it applies the schema and makes sure at least one admin user exists.
// It is safe to call on every process start.
func Bootstrap(ctx context.Context, db *sql.DB, adminPassword string) error {
	if err := Migrate(db); err != nil {
		return err
	}

	created, err := SeedAdmin(ctx, db, adminPassword)
	if err != nil {
		return err
	}
	if created {
		slog.Info("created default admin user", "username", DefaultAdminUsername, "email", DefaultAdminEmail)
	} else {
		slog.Info("admin user already exists, skipping seed")
	}
	return nil
}

// SeedAdmin creates the default admin user when no admin exists.
// The count and the insert run in one transaction. Returns true if a user was created.
func SeedAdmin(ctx context.Context, db *sql.DB, adminPassword string) (bool, error) {
	if adminPassword == "" {
		return false, errors.New("admin password is not configured")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	queries := New(db).WithTx(tx)

	admins, err := queries.CountAdmins(ctx)
	if err != nil {
		return false, fmt.Errorf("counting admin users: %w", err)
	}
	if admins > 0 {
		return false, nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return false, fmt.Errorf("hashing password: %w", err)
	}

	if _, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		FullName:     DefaultAdminName,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return false, fmt.Errorf("creating admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}
	return true, nil
}
