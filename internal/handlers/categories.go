// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wikisend/internal/forms"
	"wikisend/internal/models"
	"wikisend/internal/render"
)

// CategoriesList renders the category management page.
func (h *Wiki) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.loadCategories(r)
	if err != nil {
		h.loadError(w, r, "categories", err)
		return
	}

	h.renderer.Page(w, r, "categories_list", &render.PageData{
		Title:   "Categorias",
		Section: "categories",
		Data:    map[string]any{"Items": categories},
	})
}

// CategoryNew renders the new category form.
func (h *Wiki) CategoryNew(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, "category_form", &render.PageData{
		Title:   "Cadastrar Categoria",
		Section: "categories",
		Data:    map[string]any{"IsNew": true},
	})
}

// CategoryCreate handles the new category form submission. Subcategories
// may be entered inline as repeated name fields; blank rows are dropped.
func (h *Wiki) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := &forms.CategoryForm{
		Name:             r.FormValue("name"),
		SubCategoryNames: r.Form["sub_category_names"],
	}

	// Validation failures never reach the remote API.
	if msg := form.Validate(); msg != "" {
		h.renderer.Page(w, r, "category_form", &render.PageData{
			Title:   "Cadastrar Categoria",
			Section: "categories",
			Data:    map[string]any{"IsNew": true, "Form": form},
			Flashes: []render.Flash{{Type: "warning", Message: msg}},
		})
		return
	}

	created, err := h.client.CreateCategory(r.Context(), h.token(r), form.CreateRequest())
	if err != nil {
		slog.Error("create category failed", "error", err)
		h.renderer.Page(w, r, "category_form", &render.PageData{
			Title:   "Cadastrar Categoria",
			Section: "categories",
			Data:    map[string]any{"IsNew": true, "Form": form},
			Flashes: []render.Flash{{Type: "error", Message: err.Error()}},
		})
		return
	}

	slog.Info("category created", "identifier", created.Identifier, "name", created.Name)
	h.categories.Invalidate(r.Context())
	render.SetFlash(w, "success", "Categoria cadastrada com sucesso!")
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// CategoryEdit renders the edit form for a category, including its
// subcategories with inline add/remove controls.
func (h *Wiki) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	category, err := h.client.GetCategory(r.Context(), h.token(r), identifier)
	if err != nil {
		h.loadError(w, r, "categories", err)
		return
	}

	h.renderer.Page(w, r, "category_edit", &render.PageData{
		Title:   "Editar Categoria",
		Section: "categories",
		Data:    map[string]any{"Item": category},
	})
}

// CategoryUpdate handles the category rename submission.
func (h *Wiki) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	form := &forms.CategoryForm{Name: r.FormValue("name")}
	if msg := form.Validate(); msg != "" {
		render.SetFlash(w, "warning", msg)
		http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
		return
	}

	if _, err := h.client.UpdateCategory(r.Context(), h.token(r), identifier, models.CategoryUpdateRequest{Name: form.Name}); err != nil {
		slog.Error("update category failed", "identifier", identifier, "error", err)
		render.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
		return
	}

	h.categories.Invalidate(r.Context())
	render.SetFlash(w, "success", "Categoria atualizada com sucesso!")
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// CategoryDelete handles category deletion. The form carries a confirm
// prompt client-side; a cancelled prompt never submits. The server-side
// cascade removes the category's subcategories with it.
func (h *Wiki) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")

	if _, err := h.client.DeleteCategory(r.Context(), h.token(r), identifier); err != nil {
		slog.Error("delete category failed", "identifier", identifier, "error", err)
		render.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}

	h.categories.Invalidate(r.Context())
	render.SetFlash(w, "success", "Categoria excluída com sucesso!")
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// SubCategoryCreate adds a subcategory to an existing category from the
// edit page's inline form.
func (h *Wiki) SubCategoryCreate(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")
	name := r.FormValue("name")

	if name == "" {
		render.SetFlash(w, "warning", "Por favor, preencha o nome da subcategoria")
		http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
		return
	}

	if _, err := h.client.CreateSubCategory(r.Context(), h.token(r), models.SubCategoryCreateRequest{
		Name:               name,
		CategoryIdentifier: identifier,
	}); err != nil {
		slog.Error("create subcategory failed", "category", identifier, "error", err)
		render.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
		return
	}

	h.categories.Invalidate(r.Context())
	render.SetFlash(w, "success", "Subcategoria adicionada com sucesso!")
	http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
}

// SubCategoryDelete removes a subcategory from the edit page.
func (h *Wiki) SubCategoryDelete(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "id")
	subIdentifier := chi.URLParam(r, "subID")

	if _, err := h.client.DeleteSubCategory(r.Context(), h.token(r), subIdentifier); err != nil {
		slog.Error("delete subcategory failed", "subcategory", subIdentifier, "error", err)
		render.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
		return
	}

	h.categories.Invalidate(r.Context())
	render.SetFlash(w, "success", "Subcategoria excluída com sucesso!")
	http.Redirect(w, r, "/categories/"+identifier, http.StatusSeeOther)
}
