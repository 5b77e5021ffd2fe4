// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestCSRFSetsCookieOnFirstVisit(t *testing.T) {
	handler := CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == CSRFCookieName {
			found = true
			if c.Value == "" {
				t.Error("cookie Value should not be empty")
			}
			if c.SameSite != http.SameSiteStrictMode {
				t.Errorf("cookie SameSite: got %v, want StrictMode", c.SameSite)
			}
			if c.HttpOnly {
				t.Error("token cookie must be readable by page scripts")
			}
		}
	}
	if !found {
		t.Fatal("CSRF cookie not set")
	}
}

func TestCSRFAllowsSafeMethodsWithoutToken(t *testing.T) {
	next, called := okHandler()
	handler := CSRF(next)

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		*called = false
		req := httptest.NewRequest(method, "/categories", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if !*called {
			t.Errorf("%s should pass without a token", method)
		}
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	next, called := okHandler()
	handler := CSRF(next)

	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-abc"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if *called {
		t.Error("handler should not run without submitted token")
	}
	if rr.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	next, called := okHandler()
	handler := CSRF(next)

	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-abc"})
	req.Header.Set(CSRFHeaderName, "token-xyz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if *called {
		t.Error("handler should not run with mismatched token")
	}
	if rr.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	next, called := okHandler()
	handler := CSRF(next)

	req := httptest.NewRequest(http.MethodPost, "/categories", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-abc"})
	req.Header.Set(CSRFHeaderName, "token-abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !*called {
		t.Error("matching header token should pass")
	}
}

func TestCSRFAcceptsFormFieldToken(t *testing.T) {
	next, called := okHandler()
	handler := CSRF(next)

	form := url.Values{CSRFFormField: {"token-abc"}}
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-abc"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if !*called {
		t.Error("matching form token should pass")
	}
}

func TestGetCSRFToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetCSRFToken(req); got != "" {
		t.Errorf("no cookie should yield empty token, got %q", got)
	}

	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-abc"})
	if got := GetCSRFToken(req); got != "token-abc" {
		t.Errorf("GetCSRFToken = %q", got)
	}
}
