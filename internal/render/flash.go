// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// flash.go implements one-shot toast messages carried across a redirect
// in a short-lived cookie. Handlers follow POST-redirect-GET, so the
// success/warning/error toast set before the redirect must survive
// exactly one subsequent page render.
package render

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// flashCookieName carries pending flashes across one redirect.
const flashCookieName = "ws_flash"

// Flash represents a one-time notification message displayed to the user.
// The layout renders it as an auto-dismissing toast.
type Flash struct {
	Type    string `json:"type"` // "success", "error", "warning"
	Message string `json:"message"`
}

// SetFlash queues a toast to be shown on the next rendered page.
func SetFlash(w http.ResponseWriter, flashType, message string) {
	payload, err := json.Marshal([]Flash{{Type: flashType, Message: message}})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((5 * time.Minute).Seconds()),
	})
}

// PopFlashes returns any pending flashes and clears the cookie. A
// malformed cookie is silently discarded.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// One-shot: expire the cookie regardless of whether it parses.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}
