// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/fairdraw/seed"
	"github.com/danielhkuo/fairdraw/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	eng := testutil.NewTestEngine(t, "first:2,second:3")
	return NewRouter(eng, testutil.GetTestConfig(), seed.LocalSource{})
}

func TestHealthCheck(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("GET /health = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "OK" {
		t.Errorf("GET /health body = %q, want OK", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("GET / = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRoutesRegistered(t *testing.T) {
	mux := newTestRouter(t)

	// Wrong-method requests hit registered patterns and get 405, while
	// unregistered paths would get 404
	tests := []struct {
		method string
		path   string
	}{
		{"DELETE", "/sessions"},
		{"DELETE", "/sessions/abc"},
		{"DELETE", "/sessions/abc/entries"},
		{"DELETE", "/sessions/abc/import"},
		{"DELETE", "/sessions/abc/participants"},
		{"DELETE", "/sessions/abc/reveal"},
		{"DELETE", "/sessions/abc/draws/first"},
		{"DELETE", "/sessions/abc/draw"},
		{"DELETE", "/sessions/abc/winners"},
		{"DELETE", "/chain"},
		{"DELETE", "/chain/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, http.StatusMethodNotAllowed)
			}
		})
	}
}

func TestChainEndpointServesGenesis(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/chain", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /chain = %d, want %d", w.Code, http.StatusOK)
	}
}
