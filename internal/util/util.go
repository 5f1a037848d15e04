// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions.
package util

import (
	"database/sql"
	"errors"
	"path/filepath"
)

// ErrPathEscapes is returned by JoinWithin for names that leave the base directory.
var ErrPathEscapes = errors.New("path escapes base directory")

// NullString creates a sql.NullString from a string value.
// The empty string is stored as NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// JoinWithin joins name onto dir. The name must be a local relative path,
// so "../x", "/etc/passwd" and "" are rejected.
func JoinWithin(dir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", ErrPathEscapes
	}
	return filepath.Join(dir, name), nil
}
