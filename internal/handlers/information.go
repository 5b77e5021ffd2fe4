// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wikisend/internal/forms"
	"wikisend/internal/models"
	"wikisend/internal/render"
)

// InformationList renders the articles page with text search and
// category filter chips. Filtering happens here, over the single fetched
// list — the remote API is not queried per keystroke.
func (h *Wiki) InformationList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.loadCategories(r)
	if err != nil {
		h.loadError(w, r, "information", err)
		return
	}

	informations, err := h.client.ListInformation(r.Context(), h.token(r))
	if err != nil {
		h.loadError(w, r, "information", err)
		return
	}

	query := r.URL.Query().Get("q")
	categoryFilter := r.URL.Query().Get("category")
	filtered := filterInformation(informations, categories, query, categoryFilter)

	h.renderer.Page(w, r, "information_list", &render.PageData{
		Title:   "Informações",
		Section: "information",
		Data: map[string]any{
			"Items":          filtered,
			"Categories":     categories,
			"CategoryNames":  categoryNames(categories),
			"Query":          query,
			"CategoryFilter": categoryFilter,
			"Total":          len(informations),
		},
	})
}

// InformationNew renders the create form. The first category is
// preselected so the subcategory options are never empty on first paint
// when reference data exists.
func (h *Wiki) InformationNew(w http.ResponseWriter, r *http.Request) {
	categories, err := h.loadCategories(r)
	if err != nil {
		h.loadError(w, r, "information", err)
		return
	}

	form := &forms.InformationForm{}
	if len(categories) > 0 {
		form.SelectCategory(categories[0].Identifier)
	}

	h.renderInformationForm(w, r, "Cadastrar Informação", true, "", form, categories)
}

// SubCategoryOptions is the HTMX endpoint behind the dependent select:
// when the category changes, the browser swaps in a fresh options list
// with no subcategory selected.
func (h *Wiki) SubCategoryOptions(w http.ResponseWriter, r *http.Request) {
	categories, err := h.loadCategories(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	form := &forms.InformationForm{}
	form.SelectCategory(r.URL.Query().Get("category_identifier"))

	h.renderer.Partial(w, "subcategory_options", map[string]any{
		"Options":  form.SubCategoryOptions(categories),
		"Selected": "",
	})
}

// InformationCreate handles the create form submission.
func (h *Wiki) InformationCreate(w http.ResponseWriter, r *http.Request) {
	categories, err := h.loadCategories(r)
	if err != nil {
		h.loadError(w, r, "information", err)
		return
	}

	form := h.informationFormFromRequest(r, categories)

	// Validation fails closed: nothing reaches the remote API.
	if msg := form.Validate(); msg != "" {
		h.renderInformationForm(w, r, "Cadastrar Informação", true, "", form, categories,
			render.Flash{Type: "warning", Message: msg})
		return
	}

	created, err := h.client.CreateInformation(r.Context(), h.token(r), form.CreateRequest())
	if err != nil {
		// Remote rejection: keep everything the user typed.
		slog.Error("create information failed", "error", err)
		h.renderInformationForm(w, r, "Cadastrar Informação", true, "", form, categories,
			render.Flash{Type: "error", Message: err.Error()})
		return
	}

	slog.Info("information created", "identifier", created.Identifier)
	h.discardStaged(form)
	render.SetFlash(w, "success", "Informação cadastrada com sucesso!")
	http.Redirect(w, r, "/informations", http.StatusSeeOther)
}

// InformationEdit renders the edit form. The category list and the
// record are fetched concurrently and joined before rendering, so the
// form appears in one paint.
func (h *Wiki) InformationEdit(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	type categoriesResult struct {
		categories []models.Category
		err        error
	}
	catCh := make(chan categoriesResult, 1)
	go func() {
		categories, err := h.loadCategories(r)
		catCh <- categoriesResult{categories, err}
	}()

	info, infoErr := h.client.GetInformation(r.Context(), h.token(r), identifier)
	catRes := <-catCh

	if catRes.err != nil {
		h.loadError(w, r, "information", catRes.err)
		return
	}
	if infoErr != nil {
		h.loadError(w, r, "information", infoErr)
		return
	}

	form := forms.FromInformation(info)
	h.renderInformationForm(w, r, "Editar Informação", false, identifier, form, catRes.categories)
}

// InformationUpdate handles the edit form submission.
func (h *Wiki) InformationUpdate(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	categories, err := h.loadCategories(r)
	if err != nil {
		h.loadError(w, r, "information", err)
		return
	}

	form := h.informationFormFromRequest(r, categories)

	if msg := form.Validate(); msg != "" {
		h.renderInformationForm(w, r, "Editar Informação", false, identifier, form, categories,
			render.Flash{Type: "warning", Message: msg})
		return
	}

	if _, err := h.client.UpdateInformation(r.Context(), h.token(r), identifier, form.UpdateRequest()); err != nil {
		slog.Error("update information failed", "identifier", identifier, "error", err)
		h.renderInformationForm(w, r, "Editar Informação", false, identifier, form, categories,
			render.Flash{Type: "error", Message: err.Error()})
		return
	}

	h.discardStaged(form)
	render.SetFlash(w, "success", "Informação atualizada com sucesso!")
	http.Redirect(w, r, "/informations", http.StatusSeeOther)
}

// InformationDelete handles article deletion, behind a client-side
// confirm prompt on the submitting form.
func (h *Wiki) InformationDelete(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	if _, err := h.client.DeleteInformation(r.Context(), h.token(r), identifier); err != nil {
		slog.Error("delete information failed", "identifier", identifier, "error", err)
		render.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/informations", http.StatusSeeOther)
		return
	}

	render.SetFlash(w, "success", "Informação excluída com sucesso!")
	http.Redirect(w, r, "/informations", http.StatusSeeOther)
}

// informationFormFromRequest builds the form state from a submission.
// A posted subcategory that does not belong to the posted category is
// discarded — stale child selections never survive a parent change,
// even when the browser is bypassed.
func (h *Wiki) informationFormFromRequest(r *http.Request, categories []models.Category) *forms.InformationForm {
	r.ParseForm()

	form := &forms.InformationForm{
		Question:        r.FormValue("question"),
		Content:         r.FormValue("content"),
		FileIdentifiers: r.Form["file_ids"],
	}
	form.SelectCategory(r.FormValue("category_identifier"))

	posted := r.FormValue("sub_category_identifier")
	for _, sub := range form.SubCategoryOptions(categories) {
		if sub.Identifier == posted {
			form.SubCategoryIdentifier = posted
			break
		}
	}

	return form
}

// renderInformationForm renders the shared create/edit form template.
func (h *Wiki) renderInformationForm(w http.ResponseWriter, r *http.Request, title string, isNew bool, identifier string, form *forms.InformationForm, categories []models.Category, flashes ...render.Flash) {
	h.renderer.Page(w, r, "information_form", &render.PageData{
		Title:   title,
		Section: "information",
		Data: map[string]any{
			"IsNew":              isNew,
			"Identifier":         identifier,
			"Form":               form,
			"Categories":         categories,
			"SubCategoryOptions": form.SubCategoryOptions(categories),
			"StagedFiles":        h.attachments.List(form.FileIdentifiers),
		},
		Flashes: flashes,
	})
}

// discardStaged releases staged attachments once a submission succeeds.
func (h *Wiki) discardStaged(form *forms.InformationForm) {
	for _, id := range form.FileIdentifiers {
		h.attachments.Remove(id)
	}
}

// filterInformation applies the text search and category filter over the
// fetched list. Matching is case-insensitive on the question and the
// category name.
func filterInformation(items []models.Information, categories []models.Category, query, categoryFilter string) []models.Information {
	names := categoryNames(categories)
	query = strings.ToLower(strings.TrimSpace(query))

	var out []models.Information
	for _, item := range items {
		if categoryFilter != "" && item.CategoryIdentifier != categoryFilter {
			continue
		}
		if query != "" {
			question := strings.ToLower(item.Question)
			category := strings.ToLower(names[item.CategoryIdentifier])
			if !strings.Contains(question, query) && !strings.Contains(category, query) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// categoryNames maps category and subcategory identifiers to display names.
func categoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.Identifier] = cat.Name
		for _, sub := range cat.SubCategories {
			names[sub.Identifier] = sub.Name
		}
	}
	return names
}
