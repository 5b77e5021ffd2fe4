// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify route registration and middleware wiring.
// They use an unreachable Valkey address: LoadSession degrades to an
// anonymous request on store errors, so no live Valkey is needed here.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"wikisend/internal/api"
	"wikisend/internal/cache"
	"wikisend/internal/handlers"
	"wikisend/internal/render"
	"wikisend/internal/session"
	"wikisend/internal/staging"
)

func testRouter(t *testing.T) chi.Router {
	t.Helper()

	// Port 9 is discard; nothing listens there, so every session and
	// cache lookup errors and the request proceeds unauthenticated.
	valkey := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:9",
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { valkey.Close() })

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	sessions := session.NewStore(valkey, time.Hour, false)
	client := api.New("http://127.0.0.1:9", time.Second)
	categories := cache.NewCategoryCache(valkey, time.Minute)
	attachments := staging.NewArea(time.Hour)
	t.Cleanup(attachments.Stop)

	wiki := handlers.NewWiki(renderer, sessions, client, categories, attachments)
	auth := handlers.NewAuth(renderer, sessions, client)

	return New(sessions, wiki, auth)
}

func TestHealthRoute(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q", body["status"])
	}
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{
		"/",
		"/categories",
		"/categories/new",
		"/informations",
		"/informations/new",
		"/files",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusSeeOther {
			t.Errorf("GET %s: status %d, want %d", path, w.Code, http.StatusSeeOther)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("GET %s: Location %q, want /login", path, loc)
		}
	}
}

func TestLoginRouteIsPublic(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /login: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "WikiSend") {
		t.Error("login page body missing")
	}
}

func TestStaticAssetsServed(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/admin.css", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /static/admin.css: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ".sidebar") {
		t.Error("stylesheet content missing")
	}
}

func TestUnknownRoute404(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}
