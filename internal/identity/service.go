// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package identity manages user accounts and login sessions: registration,
// credential checks, opaque session tokens and the login/admin gates.
package identity

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/olegiv/granite-go/internal/auth"
	"github.com/olegiv/granite-go/internal/model"
	"github.com/olegiv/granite-go/internal/store"
	"github.com/olegiv/granite-go/internal/util"
)

// MinPasswordLength is the minimum number of characters in a new password.
const MinPasswordLength = 6

// tokenBytes is the number of random bytes in a session token.
const tokenBytes = 32

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID   int64
	Username string
	FullName string
	IsAdmin  bool
}

// Handle is returned by a successful Login.
type Handle struct {
	Identity Identity
	Token    string
}

// RegisterParams holds the fields of a registration form.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

// Service implements login, logout, session resolution and registration on top of the store.
type Service struct {
	queries  *store.Queries
	lifetime time.Duration
	now      func() time.Time
}

// NewService creates a Service. Sessions older than lifetime are rejected;
// a zero lifetime keeps sessions until logout.
func NewService(db *sql.DB, lifetime time.Duration) *Service {
	return &Service{
		queries:  store.New(db),
		lifetime: lifetime,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// dummyHash is checked against when the login identifier matches no user.
var dummyHash = sync.OnceValue(func() string {
	h, err := auth.HashPassword("granite-dummy-password")
	if err != nil {
		return ""
	}
	return h
})

// Login checks identifier (username or email) and password and opens a new session.
func (s *Service) Login(ctx context.Context, identifier, password string) (Handle, error) {
	if identifier == "" || password == "" {
		return Handle{}, ErrInvalidCredentials
	}

	user, err := s.queries.GetUserByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			auth.CheckPassword(password, dummyHash())
			slog.Debug("login attempt for non-existent user", "identifier", identifier)
			return Handle{}, ErrInvalidCredentials
		}
		return Handle{}, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		slog.Debug("invalid password attempt", "user_id", user.ID)
		return Handle{}, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return Handle{}, err
	}

	if _, err := s.queries.CreateUserSession(ctx, store.CreateUserSessionParams{
		UserID:       user.ID,
		SessionToken: token,
		CreatedAt:    s.now(),
	}); err != nil {
		return Handle{}, fmt.Errorf("creating session: %w", err)
	}

	return Handle{
		Identity: Identity{
			UserID:   user.ID,
			Username: user.Username,
			FullName: user.FullName,
			IsAdmin:  user.IsAdmin,
		},
		Token: token,
	}, nil
}

// Logout deletes the session for token. Unknown or empty tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := s.queries.DeleteUserSession(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Resolve returns the identity that owns token.
func (s *Service) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthorized
	}

	row, err := s.queries.GetSessionWithUser(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("resolving session: %w", err)
	}

	if s.lifetime > 0 && s.now().Sub(row.CreatedAt) > s.lifetime {
		if err := s.Logout(ctx, token); err != nil {
			return Identity{}, err
		}
		slog.Debug("session expired", "user_id", row.UserID)
		return Identity{}, ErrUnauthorized
	}

	return Identity{
		UserID:   row.UserID,
		Username: row.Username,
		FullName: row.FullName,
		IsAdmin:  row.IsAdmin,
	}, nil
}

// RequireAdmin returns the request identity if the user is currently an admin.
// The admin flag is read from the store on every call, so a change to the
// user row takes effect on the next request.
func (s *Service) RequireAdmin(ctx context.Context) (Identity, error) {
	id, err := RequireLogin(ctx)
	if err != nil {
		return Identity{}, err
	}

	user, err := s.queries.GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("loading user: %w", err)
	}
	if !user.IsAdmin {
		return Identity{}, ErrForbidden
	}

	id.IsAdmin = true
	return id, nil
}

// Register creates a regular (non-admin) user and returns its id.
// Duplicates are detected by the unique constraints on insert.
func (s *Service) Register(ctx context.Context, p RegisterParams) (int64, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	p.FullName = strings.TrimSpace(p.FullName)
	p.Phone = strings.TrimSpace(p.Phone)

	switch {
	case p.Username == "":
		return 0, model.Missing("username")
	case p.Email == "":
		return 0, model.Missing("email")
	case p.Password == "":
		return 0, model.Missing("password")
	case p.FullName == "":
		return 0, model.Missing("full_name")
	}

	if utf8.RuneCountInString(p.Password) < MinPasswordLength {
		return 0, ErrWeakPassword
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := s.queries.CreateUser(ctx, store.CreateUserParams{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
		FullName:     p.FullName,
		Phone:        util.NullString(p.Phone),
		IsAdmin:      false,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("creating user: %w", err)
	}
	return id, nil
}

// Profile returns the stored user row for the profile page.
func (s *Service) Profile(ctx context.Context, userID int64) (store.User, error) {
	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.User{}, ErrUnauthorized
		}
		return store.User{}, fmt.Errorf("loading profile: %w", err)
	}
	return user, nil
}

// newToken returns a hex-encoded random session token.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
