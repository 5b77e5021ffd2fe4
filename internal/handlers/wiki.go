// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the WikiSend admin
// console. Handlers are grouped by concern (auth, wiki) and receive
// their dependencies through the handler struct. All persistent data
// lives behind the remote API; handlers translate form posts into API
// calls and API results into rendered pages, flashes, and redirects.
package handlers

import (
	"log/slog"
	"net/http"

	"wikisend/internal/api"
	"wikisend/internal/cache"
	"wikisend/internal/middleware"
	"wikisend/internal/models"
	"wikisend/internal/render"
	"wikisend/internal/session"
	"wikisend/internal/staging"
)

// Wiki groups the authenticated admin handlers and their dependencies.
type Wiki struct {
	renderer    *render.Renderer
	sessions    *session.Store
	client      *api.Client
	categories  *cache.CategoryCache
	attachments *staging.Area
}

// NewWiki creates the admin handler group.
func NewWiki(renderer *render.Renderer, sessions *session.Store, client *api.Client, categories *cache.CategoryCache, attachments *staging.Area) *Wiki {
	return &Wiki{
		renderer:    renderer,
		sessions:    sessions,
		client:      client,
		categories:  categories,
		attachments: attachments,
	}
}

// token returns the bearer token for the current request's session.
// Handlers behind RequireAuth always have one.
func (h *Wiki) token(r *http.Request) string {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return ""
	}
	return sess.Token
}

// loadCategories returns the category reference list, serving the cached
// copy when fresh and falling back to the remote API on a miss.
func (h *Wiki) loadCategories(r *http.Request) ([]models.Category, error) {
	if categories, ok := h.categories.Get(r.Context()); ok {
		return categories, nil
	}

	categories, err := h.client.ListCategories(r.Context(), h.token(r))
	if err != nil {
		return nil, err
	}

	h.categories.Set(r.Context(), categories)
	return categories, nil
}

// loadError renders the full-page error panel for a reference-data load
// failure, with a hint to reload.
func (h *Wiki) loadError(w http.ResponseWriter, r *http.Request, section string, err error) {
	slog.Error("reference data load failed", "section", section, "error", err)
	h.renderer.Page(w, r, "load_error", &render.PageData{
		Title:   "Erro ao carregar",
		Section: section,
		Data: map[string]any{
			"Message": err.Error(),
			"Hint":    "Não foi possível carregar os dados. Por favor, recarregue a página.",
		},
	})
}

// Health returns a simple JSON health check response.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
