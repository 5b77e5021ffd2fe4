// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"wikisend/internal/api"
	"wikisend/internal/middleware"
	"wikisend/internal/models"
	"wikisend/internal/render"
	"wikisend/internal/session"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	client   *api.Client
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, client *api.Client) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		client:   client,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Entrar",
		Data:  map[string]any{"Email": ""},
	})
}

// LoginSubmit processes the login form against the remote API. Any
// rejection renders the same generic message; the real status goes to
// the log only, so the form never confirms which emails exist.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	resp, err := a.client.Login(r.Context(), models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			slog.Warn("login rejected", "status", apiErr.Status, "connection", apiErr.IsConnection())
		} else {
			slog.Error("login failed", "error", err)
		}
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Entrar",
			Data:  map[string]any{"Error": err.Error(), "Email": email},
		})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		Token: resp.AccessToken,
		User:  resp.User,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session unconditionally and returns to the login
// page. Logging out is purely local — the remote API has no logout call.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess.Authenticated() && sess.User != nil {
		slog.Info("user logged out", "user", sess.User.Email)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
