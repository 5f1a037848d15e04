// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/granite-go/internal/catalog"
	"github.com/olegiv/granite-go/internal/config"
	"github.com/olegiv/granite-go/internal/handler"
	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/session"
	"github.com/olegiv/granite-go/internal/store"
	"github.com/olegiv/granite-go/internal/upload"
	"github.com/olegiv/granite-go/internal/version"
	"github.com/olegiv/granite-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// galleryURLPrefix is where the gallery directory is served.
const galleryURLPrefix = "/static/img/Arihant"

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "granite - Arihant Granites storefront\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_ADMIN_PASSWORD    Password of the bootstrap admin (required, min 6 characters)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_DB_DRIVER         sqlite (pure Go) or sqlite3 (cgo) (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_DB_PATH           SQLite database path (default: ./data/granite.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_SERVER_HOST       Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_SERVER_PORT       Listen port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_ENV               development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_LOG_LEVEL         debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_STATIC_DIR        Static files directory (default: ./static)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_GALLERY_DIR       Product photo directory (default: ./static/img/Arihant)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_UPLOAD_MAX_BYTES  Largest accepted photo upload (default: 10485760)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_STORE_TIMEOUT     Per-request deadline (default: 5s)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  GRANITE_SESSION_LIFETIME  Login session lifetime, 0 for no limit (default: 24h)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(info); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath, "driver", cfg.DBDriver)
	dbCfg := store.DefaultDBConfig()
	dbCfg.Driver = cfg.DBDriver
	db, err := store.NewDBWithConfig(cfg.DBPath, dbCfg)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Bootstrap(ctx, db, cfg.AdminPassword)
	cancel()
	if err != nil {
		return fmt.Errorf("bootstrapping database: %w", err)
	}
	slog.Info("database ready")

	sessionManager := session.New(db, cfg.IsDevelopment(), cfg.SessionLifetime)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	router := handler.NewRouter(handler.Dependencies{
		DB:             db,
		SessionManager: sessionManager,
		Renderer:       renderer,
		Identity:       identity.NewService(db, cfg.SessionLifetime),
		Intake:         intake.NewService(db),
		Catalog:        catalog.NewReader(cfg.GalleryDir, galleryURLPrefix),
		Uploads:        upload.NewStore(cfg.GalleryDir, cfg.UploadMaxBytes),
		Version:        info,
		Logger:         logger,
		AssetsFS:       web.Static,
		StaticDir:      cfg.StaticDir,
		IsDev:          cfg.IsDevelopment(),
		RequestTimeout: cfg.StoreTimeout,
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // uploads over slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
