package render

import "net/http"

// ThemeCookieName stores the user's dark-mode preference.
const ThemeCookieName = "ws_theme"

// DarkModeFromRequest reads the theme preference cookie. Absent or
// unrecognized values mean light mode.
func DarkModeFromRequest(r *http.Request) bool {
	cookie, err := r.Cookie(ThemeCookieName)
	return err == nil && cookie.Value == "dark"
}

// SetDarkMode persists the theme preference for a year.
func SetDarkMode(w http.ResponseWriter, dark bool) {
	value := "light"
	if dark {
		value = "dark"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   365 * 24 * 60 * 60,
	})
}
