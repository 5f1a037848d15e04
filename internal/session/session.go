// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the browser session manager. The browser
// session only carries flash messages and the opaque login token; user
// data is always read from the store.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys.
const (
	KeyLoginToken = "login_token"
	KeyFlash      = "flash"
	KeyFlashType  = "flash_type"
)

// productionCookieName uses the __Host- prefix, which browsers only accept
// on secure, host-only cookies with Path=/.
const productionCookieName = "__Host-session"

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool, lifetime time.Duration) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store, sweeping expired rows every 5 minutes
	sm.Store = sqlite3store.NewWithCleanupInterval(db, 5*time.Minute)

	if lifetime > 0 {
		sm.Lifetime = lifetime
	}
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev // Secure cookies in production only
	if !isDev {
		sm.Cookie.Name = productionCookieName
	}

	return sm
}
