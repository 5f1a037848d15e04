// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package identity

import "errors"

// Sentinel errors returned by Service. Match them with errors.Is.
var (
	// ErrInvalidCredentials is returned for any failed login. It does not
	// say whether the user exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized means the caller is not logged in or the session token is unknown.
	ErrUnauthorized = errors.New("not logged in")

	// ErrForbidden means the caller is logged in but is not an admin.
	ErrForbidden = errors.New("admin access required")

	// ErrWeakPassword is returned by Register for passwords below MinPasswordLength.
	ErrWeakPassword = errors.New("password too short")

	// ErrAlreadyExists is returned by Register when the username or email is taken.
	ErrAlreadyExists = errors.New("username or email already exists")
)
