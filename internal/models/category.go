// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category is a top-level grouping of help articles. It owns zero or
// more subcategories; deleting a category cascades to them server-side.
type Category struct {
	Identifier    string        `json:"identifier"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subCategories"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SubCategory exists only as a child of exactly one category, referenced
// by CategoryIdentifier.
type SubCategory struct {
	Identifier         string    `json:"identifier"`
	Name               string    `json:"name"`
	CategoryIdentifier string    `json:"category_identifier"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CategoryCreateRequest is the payload for POST /category. Subcategories
// may be created inline with the category.
type CategoryCreateRequest struct {
	Name             string   `json:"name"`
	SubCategoryNames []string `json:"subCategoryNames,omitempty"`
}

// CategoryUpdateRequest is the payload for PUT /category/:id.
type CategoryUpdateRequest struct {
	Name string `json:"name,omitempty"`
}

// SubCategoryCreateRequest is the payload for POST /category/subcategory.
type SubCategoryCreateRequest struct {
	Name               string `json:"name"`
	CategoryIdentifier string `json:"category_identifier"`
}

// DeleteResponse is the API's uniform acknowledgement for DELETE calls
// on categories, subcategories, and information records.
type DeleteResponse struct {
	Identifier string    `json:"identifier"`
	Message    string    `json:"message"`
	DeletedAt  time.Time `json:"deleted_at"`
}
