// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/store"
	"github.com/olegiv/granite-go/internal/upload"
)

// AdminHandler handles the admin routes. Every action passes the admin gate first.
type AdminHandler struct {
	renderer *render.Renderer
	identity *identity.Service
	intake   *intake.Service
	uploads  *upload.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, idSvc *identity.Service, intakeSvc *intake.Service, uploads *upload.Store) *AdminHandler {
	return &AdminHandler{
		renderer: renderer,
		identity: idSvc,
		intake:   intakeSvc,
		uploads:  uploads,
	}
}

// DashboardData is the data of the admin dashboard.
type DashboardData struct {
	Stats    intake.Stats
	Contacts []store.Contact
	Reviews  []store.Review
}

// UploadData is the data of the upload form.
type UploadData struct {
	MaxMB int64
}

// requireAdmin runs the admin gate and answers the request when it fails.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, err := h.identity.RequireAdmin(r.Context()); err != nil {
		handleGateError(w, r, h.renderer, err)
		return false
	}
	return true
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	stats, err := h.intake.DashboardStats(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load dashboard stats", "error", err)
		return
	}
	contacts, err := h.intake.RecentContacts(r.Context(), dashboardRecentLimit)
	if err != nil {
		logAndInternalError(w, "failed to list contacts", "error", err)
		return
	}
	reviews, err := h.intake.RecentReviews(r.Context(), dashboardRecentLimit)
	if err != nil {
		logAndInternalError(w, "failed to list reviews", "error", err)
		return
	}

	renderPage(w, r, h.renderer, "admin/dashboard", render.TemplateData{
		Title: "Admin Dashboard",
		Data: DashboardData{
			Stats:    stats,
			Contacts: contacts,
			Reviews:  reviews,
		},
	})
}

// Contacts handles GET /admin/contacts.
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	contacts, err := h.intake.ListContacts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list contacts", "error", err)
		return
	}

	renderPage(w, r, h.renderer, "admin/contacts", render.TemplateData{
		Title: "Contact Messages",
		Data:  contacts,
	})
}

// UploadForm handles GET /admin/upload.
func (h *AdminHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	renderPage(w, r, h.renderer, "admin/upload", render.TemplateData{
		Title: "Upload Photo",
		Data:  UploadData{MaxMB: h.uploads.MaxBytes() >> 20},
	})
}

// Upload handles POST /admin/upload.
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxBytes()+maxUploadFormOverhead)
	if err := r.ParseMultipartForm(h.uploads.MaxBytes()); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			flashError(w, r, h.renderer, redirectAdminUpload, msgUploadTooLarge)
			return
		}
		flashError(w, r, h.renderer, redirectAdminUpload, msgInvalidForm)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		flashError(w, r, h.renderer, redirectAdminUpload, msgUploadNoFile)
		return
	}
	defer func() { _ = file.Close() }()

	name, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrInvalidFilename):
			flashError(w, r, h.renderer, redirectAdminUpload, msgUploadInvalidName)
		case errors.Is(err, upload.ErrUnsupportedType):
			flashError(w, r, h.renderer, redirectAdminUpload, msgUploadUnsupported)
		case errors.Is(err, upload.ErrTooLarge):
			flashError(w, r, h.renderer, redirectAdminUpload, msgUploadTooLarge)
		default:
			logAndInternalError(w, "failed to save upload", "filename", header.Filename, "error", err)
		}
		return
	}

	slog.Info("gallery image uploaded", "filename", name)
	flashSuccess(w, r, h.renderer, redirectAdminUpload, fmt.Sprintf(msgUploadSuccessFormat, name))
}
