// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/granite-go/internal/catalog"
	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/internal/intake"
	"github.com/olegiv/granite-go/internal/render"
	"github.com/olegiv/granite-go/internal/testutil"
	"github.com/olegiv/granite-go/internal/upload"
	"github.com/olegiv/granite-go/internal/version"
	"github.com/olegiv/granite-go/web"
)

const galleryURLPrefix = "/static/img/Arihant"

// testEnv is a running site backed by a temp database and gallery.
type testEnv struct {
	db         *sql.DB
	server     *httptest.Server
	staticDir  string
	galleryDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithTimeout(t, 5*time.Second)
}

// newTestEnvWithTimeout is newTestEnv with a custom request timeout.
func newTestEnvWithTimeout(t *testing.T, requestTimeout time.Duration) *testEnv {
	t.Helper()

	db := testutil.TestDB(t)

	sm := scs.New()
	sm.Store = memstore.New()

	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{
		TemplatesFS:    templates,
		SessionManager: sm,
		IsDev:          true,
	})
	require.NoError(t, err)

	staticDir := t.TempDir()
	galleryDir := filepath.Join(staticDir, "img", "Arihant")
	require.NoError(t, os.MkdirAll(galleryDir, 0755))

	router := NewRouter(Dependencies{
		DB:             db,
		SessionManager: sm,
		Renderer:       renderer,
		Identity:       identity.NewService(db, 0),
		Intake:         intake.NewService(db),
		Catalog:        catalog.NewReader(galleryDir, galleryURLPrefix),
		Uploads:        upload.NewStore(galleryDir, 1<<20),
		Version:        version.Info{Version: "v0.0.0-test"},
		Logger:         testutil.TestLoggerSilent(),
		AssetsFS:       web.Static,
		StaticDir:      staticDir,
		IsDev:          true,
		RequestTimeout: requestTimeout,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{
		db:         db,
		server:     srv,
		staticDir:  staticDir,
		galleryDir: galleryDir,
	}
}

// client returns a browser-like client with its own cookie jar.
// Redirects are not followed so tests can assert on them.
func (e *testEnv) client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (e *testEnv) get(t *testing.T, c *http.Client, path string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(e.server.URL + path)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (e *testEnv) postForm(t *testing.T, c *http.Client, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := c.PostForm(e.server.URL+path, form)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (e *testEnv) postFile(t *testing.T, c *http.Client, path, field, filename string, data []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := c.Post(e.server.URL+path, mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

// login submits the login form for an existing user and expects a redirect home.
func (e *testEnv) login(t *testing.T, c *http.Client, username, password string) {
	t.Helper()
	resp, _ := e.postForm(t, c, RouteLogin, url.Values{
		"username": {username},
		"password": {password},
	})
	assertRedirect(t, resp, RouteRoot)
}

// loggedInClient creates a user and returns a client logged in as them.
func (e *testEnv) loggedInClient(t *testing.T, username string, admin bool) (*http.Client, int64) {
	t.Helper()
	id := testutil.CreateUser(t, e.db, testutil.User{Username: username, IsAdmin: admin})
	c := e.client(t)
	e.login(t, c, username, "password123")
	return c, id
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Errorf("%s %s: status = %d, want %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want)
	}
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assertStatus(t, resp, http.StatusSeeOther)
	if got := resp.Header.Get("Location"); got != location {
		t.Errorf("%s %s: Location = %q, want %q", resp.Request.Method, resp.Request.URL.Path, got, location)
	}
}

// followFlash follows a redirect and returns the body of the target page,
// which carries the flash message.
func (e *testEnv) followFlash(t *testing.T, c *http.Client, resp *http.Response) string {
	t.Helper()
	loc := resp.Header.Get("Location")
	require.NotEmpty(t, loc, "response is not a redirect")
	_, body := e.get(t, c, loc)
	return body
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("body does not contain %q", w)
		}
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, G: 160, B: 80, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func (e *testEnv) addGalleryImage(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.galleryDir, name), pngBytes(t), 0644))
}
