// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/granite-go/internal/identity"
	"github.com/olegiv/granite-go/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": {Data: []byte(
			`{{define "base"}}<title>{{.Title}}</title>{{template "flash" .}}{{if .User}}[{{.User.Username}}]{{end}}{{template "content" .}}{{end}}`)},
		"partials/flash.html": {Data: []byte(
			`{{define "flash"}}{{if .Flash}}<p class="{{.FlashType}}">{{.Flash}}</p>{{end}}{{end}}`)},
		"pages/home.html": {Data: []byte(`{{define "content"}}home:{{.Data}}{{end}}`)},
		"auth/login.html": {Data: []byte(`{{define "content"}}login at {{.CurrentPath}}{{end}}`)},
		"admin/broken.html": {Data: []byte(`{{define "content"}}{{.Data.Missing}}{{end}}`)},
	}
}

func newTestRenderer(t *testing.T, fsys fs.FS) (*Renderer, *scs.SessionManager) {
	t.Helper()
	sm := scs.New()
	sm.Store = memstore.New()
	r, err := New(Config{TemplatesFS: fsys, SessionManager: sm, IsDev: true})
	require.NoError(t, err)
	return r, sm
}

func TestNew_ParsesPageDirectories(t *testing.T) {
	r, _ := newTestRenderer(t, testFS())

	assert.True(t, r.Has("pages/home"))
	assert.True(t, r.Has("auth/login"))
	assert.True(t, r.Has("admin/broken"))
	assert.False(t, r.Has("partials/flash"))
	assert.False(t, r.Has("pages/missing"))
}

func TestNew_SiteTemplates(t *testing.T) {
	templates, err := fs.Sub(web.Templates, "templates")
	require.NoError(t, err)

	r, _ := newTestRenderer(t, templates)
	for _, name := range []string{
		"pages/home", "pages/about", "pages/why_choose_us", "pages/explore",
		"pages/contact", "pages/reviews", "pages/profile",
		"auth/login", "auth/register",
		"admin/dashboard", "admin/contacts", "admin/upload",
	} {
		assert.True(t, r.Has(name), name)
	}
}

func TestNew_ParseError(t *testing.T) {
	fsys := testFS()
	fsys["pages/bad.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}{{if}}{{end}}`)}

	_, err := New(Config{TemplatesFS: fsys})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages/bad")
}

func TestRender(t *testing.T) {
	r, sm := newTestRenderer(t, testFS())

	// First request sets a flash, second renders it, third no longer sees it.
	var bodies []string
	var cookie *http.Cookie
	for i := range 3 {
		h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if i == 0 {
				r.SetFlash(req, "✅ Saved <now>", FlashSuccess)
				w.WriteHeader(http.StatusSeeOther)
				return
			}
			ctx := identity.WithIdentity(req.Context(), identity.Identity{UserID: 1, Username: "neha"})
			require.NoError(t, r.Render(w, req.WithContext(ctx), "pages/home", TemplateData{Title: "Home", Data: "x"}))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if c := rr.Result().Cookies(); len(c) > 0 {
			cookie = c[0]
		}
		bodies = append(bodies, rr.Body.String())
	}

	assert.Equal(t, `<title>Home</title><p class="success">✅ Saved &lt;now&gt;</p>[neha]home:x`, bodies[1])
	assert.Equal(t, `<title>Home</title>[neha]home:x`, bodies[2])
}

func TestRenderStatus(t *testing.T) {
	r, sm := newTestRenderer(t, testFS())

	h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, r.RenderStatus(w, req, http.StatusUnprocessableEntity, "auth/login", TemplateData{}))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "login at /login")
}

func TestRender_Errors(t *testing.T) {
	r, sm := newTestRenderer(t, testFS())

	tests := []struct {
		name string
		tmpl string
	}{
		{"unknown template", "pages/nope"},
		{"execution error", "admin/broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var renderErr error
			h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				renderErr = r.Render(w, req, tt.tmpl, TemplateData{Data: 42})
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Error(t, renderErr)
			assert.Empty(t, rr.Body.String(), "nothing is written on failure")
		})
	}
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()
	ts := time.Date(2026, 3, 7, 15, 4, 0, 0, time.UTC)

	assert.Equal(t, "Mar 7, 2026", funcs["formatDate"].(func(time.Time) string)(ts))
	assert.Equal(t, "Mar 7, 2026 3:04 PM", funcs["formatDateTime"].(func(time.Time) string)(ts))

	truncate := funcs["truncate"].(func(string, int) string)
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "गुलाबी...", truncate("गुलाबीग्रेनाइट", 6))

	stars := funcs["stars"].(func(any) string)
	assert.Equal(t, "★★★", stars(3))
	assert.Equal(t, "★★★★★", stars(int64(5)))
	assert.Equal(t, "", stars(-1))

	seq := funcs["seq"].(func(int, int) []int)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seq(1, 5))
	assert.Empty(t, seq(3, 1))
}
