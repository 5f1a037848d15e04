// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/model"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/store"
)

// ReviewsData is the data of the reviews page.
type ReviewsData struct {
	Reviews []store.Review
}

// ContactForm handles GET /contact.
func (h *PagesHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "pages/contact", render.TemplateData{Title: "Contact Us"})
}

// SubmitContact handles POST /contact.
func (h *PagesHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}

	_, err := h.intake.SubmitContact(r.Context(), intake.ContactInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	})
	if err != nil {
		h.handleSubmitError(w, r, RouteContact, err)
		return
	}

	flashSuccess(w, r, h.renderer, RouteContact, msgContactThanks)
}

// Reviews handles GET /reviews.
func (h *PagesHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.intake.RecentReviews(r.Context(), reviewsPageLimit)
	if err != nil {
		logAndInternalError(w, "failed to list reviews", "error", err)
		return
	}

	renderPage(w, r, h.renderer, "pages/reviews", render.TemplateData{
		Title: "Reviews",
		Data:  ReviewsData{Reviews: reviews},
	})
}

// SubmitReview handles POST /reviews.
func (h *PagesHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteReviews) {
		return
	}

	stars, err := intake.ParseStars(r.FormValue("stars"))
	if err != nil {
		h.handleSubmitError(w, r, RouteReviews, err)
		return
	}

	_, err = h.intake.SubmitReview(r.Context(), intake.ReviewInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Stars:   stars,
		Message: r.FormValue("message"),
	})
	if err != nil {
		h.handleSubmitError(w, r, RouteReviews, err)
		return
	}

	flashSuccess(w, r, h.renderer, RouteReviews, msgReviewThanks)
}

// handleSubmitError maps a rejected form submission to a flash message.
func (h *PagesHandler) handleSubmitError(w http.ResponseWriter, r *http.Request, redirectURL string, err error) {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		logAndInternalError(w, "failed to store submission", "path", r.URL.Path, "error", err)
		return
	}

	slog.Debug("form rejected", "path", r.URL.Path, "field", verr.Field, "kind", verr.Kind.String())
	msg := msgRequiredFields
	if verr.Kind == model.OutOfRange {
		msg = msgInvalidStars
	}
	flashError(w, r, h.renderer, redirectURL, msg)
}
