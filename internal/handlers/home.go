package handlers

import (
	"net/http"

	"wikisend/internal/render"
)

// Home renders the dashboard with live counts from the remote API. Count
// failures degrade to zeros rather than blocking the landing page.
func (h *Wiki) Home(w http.ResponseWriter, r *http.Request) {
	var categoryCount, subCategoryCount, informationCount int

	if categories, err := h.loadCategories(r); err == nil {
		categoryCount = len(categories)
		for _, cat := range categories {
			subCategoryCount += len(cat.SubCategories)
		}
	}
	if informations, err := h.client.ListInformation(r.Context(), h.token(r)); err == nil {
		informationCount = len(informations)
	}

	h.renderer.Page(w, r, "home", &render.PageData{
		Title:   "Início",
		Section: "home",
		Data: map[string]any{
			"CategoryCount":    categoryCount,
			"SubCategoryCount": subCategoryCount,
			"InformationCount": informationCount,
		},
	})
}

// ToggleTheme flips the dark-mode cookie and returns to the page the
// toggle was pressed on.
func (h *Wiki) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	render.SetDarkMode(w, !render.DarkModeFromRequest(r))

	target := r.FormValue("return_to")
	if target == "" || target[0] != '/' {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
