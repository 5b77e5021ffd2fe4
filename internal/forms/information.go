// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package forms holds the form state machines for the console's
// category-scoped editors. The logic is kept free of HTTP so the
// invariants — stale subcategory selections never surviving a parent
// change, validation failing closed before any network call — can be
// tested directly.
package forms

import (
	"strings"

	"wikisend/internal/models"
)

// InformationForm is the working state of the create/edit information
// editor: the dependent category→subcategory pair, the question, the
// rich-text HTML content, and any staged attachment identifiers.
type InformationForm struct {
	CategoryIdentifier    string
	SubCategoryIdentifier string
	Question              string
	Content               string
	FileIdentifiers       []string
}

// SelectCategory records a category choice. Whenever the category
// changes, the subcategory selection is unconditionally reset — a child
// of the previous category must never survive a parent change.
func (f *InformationForm) SelectCategory(identifier string) {
	if f.CategoryIdentifier != identifier {
		f.SubCategoryIdentifier = ""
	}
	f.CategoryIdentifier = identifier
}

// SubCategoryOptions derives the selectable subcategories from the
// already-fetched category list: exactly the children of the selected
// category, or nothing when no category is selected.
func (f *InformationForm) SubCategoryOptions(categories []models.Category) []models.SubCategory {
	if f.CategoryIdentifier == "" {
		return nil
	}
	for _, cat := range categories {
		if cat.Identifier == f.CategoryIdentifier {
			return cat.SubCategories
		}
	}
	return nil
}

// Validate checks the form ahead of submission. It fails closed: the
// first failing rule wins and its warning message is returned. An empty
// string means the form may be submitted.
func (f *InformationForm) Validate() string {
	if strings.TrimSpace(f.Question) == "" {
		return "Por favor, preencha a pergunta antes de continuar."
	}
	if strings.TrimSpace(f.Content) == "" {
		return "Por favor, preencha o conteúdo antes de continuar."
	}
	if f.CategoryIdentifier == "" {
		return "Por favor, selecione uma categoria antes de salvar."
	}
	if f.SubCategoryIdentifier == "" {
		return "Por favor, selecione uma subcategoria antes de salvar."
	}
	return ""
}

// CreateRequest builds the API payload. Staged attachments are not sent:
// pushing file bytes to the remote API is a capability the API owns and
// this editor does not exercise yet.
func (f *InformationForm) CreateRequest() models.InformationCreateRequest {
	return models.InformationCreateRequest{
		Question:              f.Question,
		Content:               f.Content,
		CategoryIdentifier:    f.CategoryIdentifier,
		SubCategoryIdentifier: f.SubCategoryIdentifier,
	}
}

// UpdateRequest builds the partial API payload for the edit flow.
func (f *InformationForm) UpdateRequest() models.InformationUpdateRequest {
	return models.InformationUpdateRequest{
		Question:              f.Question,
		Content:               f.Content,
		CategoryIdentifier:    f.CategoryIdentifier,
		SubCategoryIdentifier: f.SubCategoryIdentifier,
	}
}

// FromInformation seeds the form from an existing record for the edit
// flow.
func FromInformation(info *models.Information) *InformationForm {
	return &InformationForm{
		CategoryIdentifier:    info.CategoryIdentifier,
		SubCategoryIdentifier: info.SubCategoryIdentifier,
		Question:              info.Question,
		Content:               info.Content,
	}
}
