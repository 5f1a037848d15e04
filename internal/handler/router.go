// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/granite-go/internal/catalog"
	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/middleware"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/upload"
	"github.com/olegiv/granite-go/internal/version"
)

// Cache lifetimes for static assets.
const (
	assetsMaxAge  = 24 * time.Hour
	galleryMaxAge = time.Hour
)

// Dependencies holds everything the router wires into the handlers.
type Dependencies struct {
	DB             *sql.DB
	SessionManager *scs.SessionManager
	Renderer       *render.Renderer
	Identity       *identity.Service
	Intake         *intake.Service
	Catalog        *catalog.Reader
	Uploads        *upload.Store
	Version        version.Info
	Logger         *slog.Logger

	// AssetsFS is served at the site root; only its static/css tree is routed.
	AssetsFS fs.FS
	// StaticDir is the on-disk static directory holding the gallery images.
	StaticDir string

	IsDev          bool
	RequestTimeout time.Duration
}

// NewRouter builds the chi router with the middleware stack and every site route.
func NewRouter(d Dependencies) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pages := NewPagesHandler(d.Renderer, d.Intake, d.Catalog)
	authHandler := NewAuthHandler(d.Renderer, d.SessionManager, d.Identity)
	admin := NewAdminHandler(d.Renderer, d.Identity, d.Intake, d.Uploads)
	health := NewHealthHandler(d.DB, d.Version)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "text/html", "text/css", "application/json"))
	r.Use(chimw.GetHead)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(d.IsDev)))

	// Static files do not need a session.
	if d.AssetsFS != nil {
		assets := http.FileServer(middleware.NoListing(http.FS(d.AssetsFS)))
		r.Handle(RouteStatic+"/css/*", middleware.StaticCache(assetsMaxAge)(assets))
	}
	if d.StaticDir != "" {
		gallery := http.StripPrefix(RouteStatic+"/", http.FileServer(middleware.NoListing(http.Dir(d.StaticDir))))
		r.Handle(RouteStatic+"/*", middleware.StaticCache(galleryMaxAge)(gallery))
	}

	r.Group(func(r chi.Router) {
		r.Use(d.SessionManager.LoadAndSave)
		r.Use(middleware.LoadIdentity(d.SessionManager, d.Identity))

		r.Group(func(r chi.Router) {
			if d.RequestTimeout > 0 {
				r.Use(middleware.Timeout(d.RequestTimeout))
			}

			r.Get(RouteHealth, health.Health)

			r.Get(RouteRoot, pages.Home)
			r.Get(RouteAbout, pages.About)
			r.Get(RouteWhyChooseUs, pages.WhyChooseUs)
			r.Get(RouteExplore, pages.Explore)
			r.Get(RouteContact, pages.ContactForm)
			r.Post(RouteContact, pages.SubmitContact)
			r.Get(RouteReviews, pages.Reviews)
			r.Post(RouteReviews, pages.SubmitReview)

			r.Get(RouteLogin, authHandler.LoginForm)
			r.Post(RouteLogin, authHandler.Login)
			r.Get(RouteRegister, authHandler.RegisterForm)
			r.Post(RouteRegister, authHandler.Register)
			r.Get(RouteLogout, authHandler.Logout)
			r.Get(RouteProfile, authHandler.Profile)

			r.Get(RouteAdmin+RouteDashboard, admin.Dashboard)
			r.Get(RouteAdmin+RouteContacts, admin.Contacts)
			r.Get(RouteAdmin+RouteUpload, admin.UploadForm)
		})

		// The photo body can take longer than the request timeout to arrive;
		// it is bounded by the body size limit and the server timeouts.
		r.Post(RouteAdmin+RouteUpload, admin.Upload)
	})

	return r
}
