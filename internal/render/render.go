// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin console.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"wikisend/internal/middleware"
	"wikisend/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "home", "categories")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	DarkMode  bool           // Theme preference from the ws_theme cookie
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Renderer handles template parsing and execution for admin pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login": true,
}

// partialTemplates render as bare fragments with no layout at all,
// used for HTMX swaps like the dependent subcategory options.
var partialTemplates = map[string]bool{
	"subcategory_options": true,
	"staged_files":        true,
}

// New creates a Renderer by parsing all admin templates from the embedded
// filesystem. Each page template is paired with the base layout. When
// devMode is true, templates load assets from CDN; when false, they
// reference the embedded static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// fmtDate formats API timestamps for listings.
			"fmtDate": func(t time.Time) string {
				if t.IsZero() {
					return "—"
				}
				return t.Format("02/01/2006")
			},
			// fmtSize renders a file size in a human-friendly unit.
			"fmtSize": func(size int64) string {
				switch {
				case size >= 1<<20:
					return fmt.Sprintf("%.1f MB", float64(size)/float64(1<<20))
				case size >= 1<<10:
					return fmt.Sprintf("%.1f KB", float64(size)/float64(1<<10))
				default:
					return fmt.Sprintf("%d B", size)
				}
			},
			// rawHTML marks editor-produced content as pre-rendered HTML.
			// Information content arrives from the rich-text editor via
			// the remote API and is rendered as-is.
			"rawHTML": func(s string) template.HTML {
				return template.HTML(s)
			},
			// excerpt trims content to a short plain preview for tables.
			"excerpt": func(s string, max int) string {
				s = stripTags(s)
				runes := []rune(s)
				if len(runes) <= max {
					return s
				}
				return string(runes[:max]) + "…"
			},
		},
	}

	entries, err := adminFS.ReadDir("templates/admin")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error

		// Standalone pages and partials parse without the base layout.
		if standaloneTemplates[tmplName] || partialTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				adminFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				adminFS, "templates/admin/base.html", "templates/admin/"+name,
			)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered. Pending flash
// messages are drained into the page on every full render.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from the cookie (set by CSRF middleware).
	data.CSRFToken = middleware.GetCSRFToken(r)

	// Inject session and theme from the request.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}
	data.DarkMode = DarkModeFromRequest(r)

	// Drain one-shot flash messages set by a previous redirect.
	data.Flashes = append(data.Flashes, PopFlashes(w, r)...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) && !standaloneTemplates[name] {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Partial renders a bare fragment template with no layout, for HTMX
// swap targets such as the dependent subcategory select.
func (rn *Renderer) Partial(w http.ResponseWriter, name string, data any) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, name+".html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// stripTags removes HTML tags for plain-text previews. Good enough for
// table excerpts; not a sanitizer.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
