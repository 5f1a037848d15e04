// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package identity

import (
	"context"
	"fmt"
)

type contextKey struct{}

type resolveErrorKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity attached to ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// WithResolveError returns a copy of ctx recording that the login token
// could not be resolved because of err. Gates report err instead of
// treating the request as anonymous.
func WithResolveError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, resolveErrorKey{}, err)
}

// ResolveError returns the error recorded by WithResolveError, if any.
func ResolveError(ctx context.Context) error {
	err, _ := ctx.Value(resolveErrorKey{}).(error)
	return err
}

// RequireLogin returns the request identity or ErrUnauthorized.
// If the login session could not be resolved, the resolve error is returned.
func RequireLogin(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if ok {
		return id, nil
	}
	if err := ResolveError(ctx); err != nil {
		return Identity{}, fmt.Errorf("resolving login session: %w", err)
	}
	return Identity{}, ErrUnauthorized
}
