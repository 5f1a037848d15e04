// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		method   string
		target   string
		wantCode int
		wantLoc  string
	}{
		{http.MethodGet, "/", http.StatusOK, ""},
		{http.MethodGet, "/explore", http.StatusOK, ""},
		{http.MethodGet, "/explore/", http.StatusMovedPermanently, "/explore"},
		{http.MethodGet, "/admin/dashboard/?x=1", http.StatusMovedPermanently, "/admin/dashboard?x=1"},
		{http.MethodHead, "/about/", http.StatusMovedPermanently, "/about"},
		{http.MethodGet, "//evil.example/", http.StatusMovedPermanently, "/evil.example"},
		{http.MethodPost, "/contact/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			h := StripTrailingSlash(okHandler())
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			if rr.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got, tt.wantLoc)
			}
		})
	}
}
