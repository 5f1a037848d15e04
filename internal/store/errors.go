// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"

	mattn "github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsUniqueViolation reports whether err was caused by a UNIQUE or PRIMARY KEY
// constraint, for either registered SQLite driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var modernErr *sqlite.Error
	if errors.As(err, &modernErr) {
		code := modernErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	var mattnErr mattn.Error
	if errors.As(err, &mattnErr) {
		return mattnErr.ExtendedCode == mattn.ErrConstraintUnique ||
			mattnErr.ExtendedCode == mattn.ErrConstraintPrimaryKey
	}

	return false
}
