// Package router sets up all HTTP routes and middleware chains for the
// WikiSend admin console. It organizes routes into public and
// authenticated groups with appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wikisend/internal/handlers"
	"wikisend/internal/middleware"
	"wikisend/internal/session"
	"wikisend/web"
)

// loginRateLimit bounds credential-guessing on the login form:
// 10 attempts per minute per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = 1 * time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, wiki *handlers.Wiki, auth *handlers.Auth) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", handlers.Health)

	// Static assets embedded in the binary.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	loginLimiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)

	// Login — accessible without a session; authenticated users bounce home.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.With(middleware.RedirectAuthed).Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)
	})

	// Authenticated console.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)
		r.Use(middleware.RequireAuth)

		r.Get("/", wiki.Home)
		r.Post("/theme", wiki.ToggleTheme)

		// Categories
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", wiki.CategoriesList)
			r.Get("/new", wiki.CategoryNew)
			r.Post("/", wiki.CategoryCreate)
			r.Get("/{id}", wiki.CategoryEdit)
			r.Post("/{id}", wiki.CategoryUpdate)
			r.Post("/{id}/delete", wiki.CategoryDelete)
			r.Post("/{id}/subcategories", wiki.SubCategoryCreate)
			r.Post("/{id}/subcategories/{subID}/delete", wiki.SubCategoryDelete)
		})

		// Information records
		r.Route("/informations", func(r chi.Router) {
			r.Get("/", wiki.InformationList)
			r.Get("/new", wiki.InformationNew)
			r.Get("/subcategory-options", wiki.SubCategoryOptions)
			r.Post("/", wiki.InformationCreate)
			r.Post("/attachments", wiki.AttachmentStage)
			r.Post("/attachments/remove", wiki.AttachmentRemove)
			r.Get("/{id}", wiki.InformationEdit)
			r.Post("/{id}", wiki.InformationUpdate)
			r.Post("/{id}/delete", wiki.InformationDelete)
		})

		// Attached files (read-only)
		r.Get("/files", wiki.FilesList)
	})

	return r
}
