// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides the HTTP middleware of the site.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/session"
)

// Resolver maps an opaque login token to an identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (identity.Identity, error)
}

// LoadIdentity creates middleware that attaches the logged-in identity to the
// request context. Requests without a valid login token continue anonymously;
// an unknown or expired token is removed from the browser session.
// A store failure keeps the token and is recorded on the context, so the
// login and admin gates fail the request instead of redirecting to login.
// It must run inside the session manager's LoadAndSave.
func LoadIdentity(sm *scs.SessionManager, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sm.GetString(r.Context(), session.KeyLoginToken)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrUnauthorized) {
					sm.Remove(r.Context(), session.KeyLoginToken)
					next.ServeHTTP(w, r)
					return
				}
				slog.Error("failed to resolve session", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r.WithContext(identity.WithResolveError(r.Context(), err)))
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		})
	}
}
