package forms

import (
	"strings"

	"wikisend/internal/models"
)

// CategoryForm is the working state of the category editor: the name
// plus any subcategory names entered inline on the create flow.
type CategoryForm struct {
	Name             string
	SubCategoryNames []string
}

// Validate checks the form ahead of submission and returns the warning
// message for the first failing rule, or "" when valid.
func (f *CategoryForm) Validate() string {
	if strings.TrimSpace(f.Name) == "" {
		return "Por favor, preencha o nome da categoria."
	}
	return ""
}

// CreateRequest builds the API payload. Blank subcategory rows left in
// the form are filtered out; when none remain the field is omitted.
func (f *CategoryForm) CreateRequest() models.CategoryCreateRequest {
	var names []string
	for _, name := range f.SubCategoryNames {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	return models.CategoryCreateRequest{
		Name:             f.Name,
		SubCategoryNames: names,
	}
}
