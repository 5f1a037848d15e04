// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/model"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/session"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	identity       *identity.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *render.Renderer, sm *scs.SessionManager, svc *identity.Service) *AuthHandler {
	return &AuthHandler{
		renderer:       renderer,
		sessionManager: sm,
		identity:       svc,
	}
}

// LoginForm renders the login page.
// Already-authenticated users are sent to the home page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity.FromContext(r.Context()); ok {
		http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
		return
	}
	renderPage(w, r, h.renderer, "auth/login", render.TemplateData{Title: "Login"})
}

// Login handles the login form submission.
// The username field accepts either a username or an email address.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	handle, err := h.identity.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			slog.Warn("failed login attempt", "remote_addr", r.RemoteAddr)
			flashError(w, r, h.renderer, redirectLogin, msgInvalidCredentials)
			return
		}
		logAndInternalError(w, "failed to log in", "error", err)
		return
	}

	// A browser that was already logged in gives up its previous login session
	if previous := h.sessionManager.GetString(r.Context(), session.KeyLoginToken); previous != "" {
		if err := h.identity.Logout(r.Context(), previous); err != nil {
			logAndInternalError(w, "failed to end previous session", "error", err)
			return
		}
	}

	// Renew the cookie token to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyLoginToken, handle.Token)

	slog.Info("user logged in", "user_id", handle.Identity.UserID, "admin", handle.Identity.IsAdmin)
	flashSuccess(w, r, h.renderer, RouteRoot, msgLoginSuccess)
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "auth/register", render.TemplateData{Title: "Register"})
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteRegister) {
		return
	}

	id, err := h.identity.Register(r.Context(), identity.RegisterParams{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		FullName: r.FormValue("full_name"),
		Phone:    r.FormValue("phone"),
	})
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			flashError(w, r, h.renderer, RouteRegister, msgRequiredFields)
		case errors.Is(err, identity.ErrWeakPassword):
			flashError(w, r, h.renderer, RouteRegister, msgWeakPassword)
		case errors.Is(err, identity.ErrAlreadyExists):
			flashError(w, r, h.renderer, RouteRegister, msgAlreadyExists)
		default:
			logAndInternalError(w, "failed to register user", "error", err)
		}
		return
	}

	slog.Info("user registered", "user_id", id)
	flashSuccess(w, r, h.renderer, redirectLogin, msgRegisterSuccess)
}

// Logout ends the login session. It is safe to call without one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.sessionManager.GetString(r.Context(), session.KeyLoginToken)
	if err := h.identity.Logout(r.Context(), token); err != nil {
		logAndInternalError(w, "failed to log out", "error", err)
		return
	}

	h.sessionManager.Remove(r.Context(), session.KeyLoginToken)
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "failed to renew session token", "error", err)
		return
	}

	flashAndRedirect(w, r, h.renderer, RouteRoot, msgLoggedOut, render.FlashInfo)
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := identity.RequireLogin(r.Context())
	if err != nil {
		handleGateError(w, r, h.renderer, err)
		return
	}

	user, err := h.identity.Profile(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUnauthorized) {
			h.sessionManager.Remove(r.Context(), session.KeyLoginToken)
		}
		handleGateError(w, r, h.renderer, err)
		return
	}

	renderPage(w, r, h.renderer, "pages/profile", render.TemplateData{
		Title: "My Profile",
		Data:  user,
	})
}
