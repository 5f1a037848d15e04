// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/granite-go/internal/catalog"
	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/store"
)

// PagesHandler serves the public site pages and their forms.
type PagesHandler struct {
	renderer *render.Renderer
	intake   *intake.Service
	catalog  *catalog.Reader
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(renderer *render.Renderer, intakeSvc *intake.Service, reader *catalog.Reader) *PagesHandler {
	return &PagesHandler{
		renderer: renderer,
		intake:   intakeSvc,
		catalog:  reader,
	}
}

// HomeData is the data of the home page.
type HomeData struct {
	Featured     []catalog.Listing
	Testimonials []catalog.Testimonial
	Reviews      []store.Review
}

// Home handles GET /.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.catalog.Featured(catalog.DefaultFeatured)
	if err != nil {
		logAndInternalError(w, "failed to read gallery", "error", err)
		return
	}

	reviews, err := h.intake.RecentReviews(r.Context(), homeReviewsLimit)
	if err != nil {
		logAndInternalError(w, "failed to list reviews", "error", err)
		return
	}

	renderPage(w, r, h.renderer, "pages/home", render.TemplateData{
		Title: "Home",
		Data: HomeData{
			Featured:     featured,
			Testimonials: catalog.Testimonials(),
			Reviews:      reviews,
		},
	})
}

// About handles GET /about.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "pages/about", render.TemplateData{Title: "About Us"})
}

// WhyChooseUs handles GET /why-choose-us.
func (h *PagesHandler) WhyChooseUs(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "pages/why_choose_us", render.TemplateData{Title: "Why Choose Us"})
}

// Explore handles GET /explore.
func (h *PagesHandler) Explore(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalog.List()
	if err != nil {
		logAndInternalError(w, "failed to read gallery", "error", err)
		return
	}

	renderPage(w, r, h.renderer, "pages/explore", render.TemplateData{
		Title: "Explore",
		Data:  listings,
	})
}
