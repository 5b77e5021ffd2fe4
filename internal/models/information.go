// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Information is a single help article: a question plus rich-text HTML
// content, filed under a category/subcategory pair. The subcategory must
// belong to the article's category; the console enforces this by deriving
// the subcategory options from the selected category.
type Information struct {
	Identifier            string    `json:"identifier"`
	Question              string    `json:"question"`
	Content               string    `json:"content"`
	File                  *FileInfo `json:"file,omitempty"`
	FileIdentifier        *int      `json:"file_identifier,omitempty"`
	CategoryIdentifier    string    `json:"category_identifier"`
	SubCategoryIdentifier string    `json:"sub_category_identifier"`
	UserIdentifier        string    `json:"user_identifier"`
	UserName              string    `json:"user_name"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// InformationCreateRequest is the payload for POST /information.
type InformationCreateRequest struct {
	Question              string `json:"question"`
	Content               string `json:"content"`
	FileIdentifier        *int   `json:"file_identifier,omitempty"`
	CategoryIdentifier    string `json:"category_identifier"`
	SubCategoryIdentifier string `json:"sub_category_identifier"`
}

// InformationUpdateRequest is the partial payload for PUT /information/:id.
type InformationUpdateRequest struct {
	Question              string `json:"question,omitempty"`
	Content               string `json:"content,omitempty"`
	FileIdentifier        *int   `json:"file_identifier,omitempty"`
	CategoryIdentifier    string `json:"category_identifier,omitempty"`
	SubCategoryIdentifier string `json:"sub_category_identifier,omitempty"`
}
