// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. The console is exercised end to end through its
// router against a fake remote API; tests are skipped when Valkey is
// unavailable. The package is external so the router can be imported
// without a cycle.
package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"wikisend/internal/api"
	"wikisend/internal/cache"
	"wikisend/internal/handlers"
	"wikisend/internal/middleware"
	"wikisend/internal/models"
	"wikisend/internal/render"
	"wikisend/internal/router"
	"wikisend/internal/session"
	"wikisend/internal/staging"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient returns a Redis client connected to the test Valkey.
// Skips the test if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests to isolate from dev data.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Del(ctx, "categories")
		client.Close()
	})

	return client
}

// fakeAPI stands in for the remote WikiSend API. It serves a fixed
// category tree, accepts any login with the configured password, and
// counts every request by method and path so tests can assert which
// calls the console did or did not make.
type fakeAPI struct {
	mu       sync.Mutex
	hits     map[string]int
	lastBody map[string][]byte

	password   string
	categories []models.Category
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits:     make(map[string]int),
		lastBody: make(map[string][]byte),
		password: "secret",
		categories: []models.Category{
			{
				Identifier: "c1",
				Name:       "Campanhas",
				SubCategories: []models.SubCategory{
					{Identifier: "s1", Name: "Criação", CategoryIdentifier: "c1"},
					{Identifier: "s2", Name: "Relatórios", CategoryIdentifier: "c1"},
				},
			},
			{
				Identifier: "c2",
				Name:       "Contatos",
				SubCategories: []models.SubCategory{
					{Identifier: "s3", Name: "Importação", CategoryIdentifier: "c2"},
				},
			},
		},
	}
}

// Hits returns how many times "METHOD /path" was requested.
func (f *fakeAPI) Hits(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

// LastBody returns the most recent request body for "METHOD /path".
func (f *fakeAPI) LastBody(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody[key]
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.hits[key]++
	f.lastBody[key] = body
	f.mu.Unlock()

	switch {
	case key == "POST /auth/login":
		var creds models.LoginRequest
		json.Unmarshal(body, &creds)
		if creds.Password != f.password {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
			return
		}
		json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "test-token",
			User:        &models.User{ID: "u1", Name: "Ana", Email: creds.Email},
		})

	case key == "GET /category":
		json.NewEncoder(w).Encode(f.categories)

	case key == "GET /category/c1":
		json.NewEncoder(w).Encode(f.categories[0])

	case key == "POST /category":
		json.NewEncoder(w).Encode(models.Category{Identifier: "c-new", Name: "created"})

	case key == "POST /information":
		json.NewEncoder(w).Encode(models.Information{Identifier: "i-new"})

	case key == "GET /information":
		json.NewEncoder(w).Encode([]models.Information{
			{Identifier: "i1", Question: "Como criar uma campanha?", CategoryIdentifier: "c1", SubCategoryIdentifier: "s1"},
			{Identifier: "i2", Question: "Como importar contatos?", CategoryIdentifier: "c2", SubCategoryIdentifier: "s3"},
		})

	case key == "GET /information/i1":
		json.NewEncoder(w).Encode(models.Information{
			Identifier: "i1", Question: "Como criar uma campanha?",
			Content: "<p>Passo a passo.</p>", CategoryIdentifier: "c1", SubCategoryIdentifier: "s1",
		})

	case key == "GET /file":
		json.NewEncoder(w).Encode([]models.FileInfo{
			{ID: 1, OriginalName: "manual.pdf", Mimetype: "application/pdf", Size: 1024, UploadedAt: time.Now()},
		})

	case strings.HasPrefix(key, "DELETE "):
		json.NewEncoder(w).Encode(models.DeleteResponse{Message: "deleted"})

	case strings.HasPrefix(key, "PUT "):
		w.Write([]byte("{}"))

	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}
}

// testConsole is a fully wired console server plus a cookie-carrying
// HTTP client that does not follow redirects.
type testConsole struct {
	server *httptest.Server
	client *http.Client
	api    *fakeAPI
}

// newTestConsole wires the whole stack against a fake remote API.
func newTestConsole(t *testing.T) *testConsole {
	t.Helper()

	valkey := testValkeyClient(t)

	fake := newFakeAPI()
	apiServer := httptest.NewServer(fake)
	t.Cleanup(apiServer.Close)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	sessions := session.NewStore(valkey, time.Hour, false)
	client := api.New(apiServer.URL, 5*time.Second)
	categories := cache.NewCategoryCache(valkey, time.Minute)
	attachments := staging.NewArea(time.Hour)
	t.Cleanup(attachments.Stop)

	wiki := handlers.NewWiki(renderer, sessions, client, categories, attachments)
	auth := handlers.NewAuth(renderer, sessions, client)

	server := httptest.NewServer(router.New(sessions, wiki, auth))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}

	return &testConsole{
		server: server,
		api:    fake,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// csrfToken returns the CSRF token currently held in the cookie jar.
func (c *testConsole) csrfToken(t *testing.T) string {
	t.Helper()
	u, _ := url.Parse(c.server.URL)
	for _, cookie := range c.client.Jar.Cookies(u) {
		if cookie.Name == middleware.CSRFCookieName {
			return cookie.Value
		}
	}
	t.Fatal("no CSRF cookie in jar; GET a page first")
	return ""
}

// get performs a GET and returns the response.
func (c *testConsole) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := c.client.Get(c.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// postForm submits a form with the jar's CSRF token included.
func (c *testConsole) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	form.Set(middleware.CSRFFormField, c.csrfToken(t))
	resp, err := c.client.PostForm(c.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// login runs the full login flow and leaves the session cookie in the jar.
func (c *testConsole) login(t *testing.T) {
	t.Helper()

	resp := c.get(t, "/login")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /login: status %d", resp.StatusCode)
	}

	resp = c.postForm(t, "/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("POST /login: status %d, want redirect", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("POST /login redirected to %q, want /", loc)
	}
}

// readBody drains and closes the response body.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}
