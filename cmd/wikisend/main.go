// Package main is the entry point for the WikiSend admin console.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikisend/internal/api"
	"wikisend/internal/cache"
	"wikisend/internal/config"
	"wikisend/internal/handlers"
	"wikisend/internal/render"
	"wikisend/internal/router"
	"wikisend/internal/session"
	"wikisend/internal/staging"
)

func main() {
	// Structured logger: outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api", cfg.APIBaseURL,
	)

	// Connect to Valkey (Redis-compatible session store + category cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, cfg.SessionTTL, secureCookies)

	// Client for the remote WikiSend API that owns all persistent data.
	apiClient := api.New(cfg.APIBaseURL, cfg.APITimeout)

	// Short-TTL cache for the category reference list.
	categoryCache := cache.NewCategoryCache(valkeyClient, cache.DefaultCategoryTTL)

	// In-memory staging area for attachment uploads.
	attachments := staging.NewArea(staging.DefaultTTL)
	defer attachments.Stop()

	// Initialize the HTML template renderer for admin pages.
	// In dev mode, templates load assets from CDN; in production they use
	// files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	wikiHandlers := handlers.NewWiki(renderer, sessionStore, apiClient, categoryCache, attachments)
	authHandlers := handlers.NewAuth(renderer, sessionStore, apiClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, wikiHandlers, authHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate the remote API's own timeout on slow upstream calls.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.APITimeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
