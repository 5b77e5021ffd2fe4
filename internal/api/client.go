// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the typed HTTP client for the remote WikiSend API — the
// single collaborator that owns all persistent data. Every method is one
// best-effort round trip: no retries, no caching. Requests are bound to
// the caller's context so abandoned page loads cancel their calls, and
// the underlying http.Client carries a hard timeout so a hung server can
// never wedge a form indefinitely.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"wikisend/internal/models"
)

// connectionErrMsg is shown for any transport-level failure (server
// unreachable, DNS, timeout). Deliberately generic.
const connectionErrMsg = "Erro na conexão com o servidor"

// DefaultTimeout bounds every API round trip.
const DefaultTimeout = 15 * time.Second

// Error is the uniform error every client method returns. Status is the
// HTTP status of the rejection, or 0 for transport failures. Message is
// always safe to show to the user: either the server's own message field
// or a fixed per-operation fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsConnection reports whether the error was a transport failure rather
// than a server rejection.
func (e *Error) IsConnection() bool { return e.Status == 0 }

// Client calls the remote WikiSend API. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL. A timeout of 0 uses
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login authenticates against POST /auth/login. Rejections surface the
// generic credentials message regardless of the server's response body,
// so the UI never distinguishes a wrong password from an unknown email.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, &Error{Message: connectionErrMsg}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Message: connectionErrMsg}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Message: connectionErrMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &Error{Status: resp.StatusCode, Message: "Credenciais inválidas"}
	}

	var out models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: connectionErrMsg}
	}
	return &out, nil
}

// --- Categories ---

// ListCategories fetches all categories with their subcategories.
func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/category", token, nil, &out, "Erro ao buscar categorias"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategory fetches a single category by identifier.
func (c *Client) GetCategory(ctx context.Context, token, identifier string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodGet, "/category/"+identifier, token, nil, &out, "Categoria não encontrada"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory creates a category, optionally with inline subcategories.
func (c *Client) CreateCategory(ctx context.Context, token string, reqBody models.CategoryCreateRequest) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/category", token, reqBody, &out, "Erro ao criar categoria"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, token, identifier string, reqBody models.CategoryUpdateRequest) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPut, "/category/"+identifier, token, reqBody, &out, "Erro ao atualizar categoria"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category. The server cascades the delete to
// the category's subcategories.
func (c *Client) DeleteCategory(ctx context.Context, token, identifier string) (*models.DeleteResponse, error) {
	var out models.DeleteResponse
	if err := c.do(ctx, http.MethodDelete, "/category/"+identifier, token, nil, &out, "Erro ao deletar categoria"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubCategory adds a subcategory to an existing category.
func (c *Client) CreateSubCategory(ctx context.Context, token string, reqBody models.SubCategoryCreateRequest) (*models.SubCategory, error) {
	var out models.SubCategory
	if err := c.do(ctx, http.MethodPost, "/category/subcategory", token, reqBody, &out, "Erro ao criar subcategoria"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubCategory deletes a subcategory by identifier.
func (c *Client) DeleteSubCategory(ctx context.Context, token, identifier string) (*models.DeleteResponse, error) {
	var out models.DeleteResponse
	if err := c.do(ctx, http.MethodDelete, "/category/subcategory/"+identifier, token, nil, &out, "Erro ao deletar subcategoria"); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Information ---

// ListInformation fetches all information records.
func (c *Client) ListInformation(ctx context.Context, token string) ([]models.Information, error) {
	var out []models.Information
	if err := c.do(ctx, http.MethodGet, "/information", token, nil, &out, "Erro ao buscar informações"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInformation fetches a single information record by identifier.
func (c *Client) GetInformation(ctx context.Context, token, identifier string) (*models.Information, error) {
	var out models.Information
	if err := c.do(ctx, http.MethodGet, "/information/"+identifier, token, nil, &out, "Erro ao buscar informação"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInformation creates an information record.
func (c *Client) CreateInformation(ctx context.Context, token string, reqBody models.InformationCreateRequest) (*models.Information, error) {
	var out models.Information
	if err := c.do(ctx, http.MethodPost, "/information", token, reqBody, &out, "Erro ao criar informação"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInformation applies a partial update to an information record.
func (c *Client) UpdateInformation(ctx context.Context, token, identifier string, reqBody models.InformationUpdateRequest) (*models.Information, error) {
	var out models.Information
	if err := c.do(ctx, http.MethodPut, "/information/"+identifier, token, reqBody, &out, "Erro ao atualizar informação"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInformation deletes an information record.
func (c *Client) DeleteInformation(ctx context.Context, token, identifier string) (*models.DeleteResponse, error) {
	var out models.DeleteResponse
	if err := c.do(ctx, http.MethodDelete, "/information/"+identifier, token, nil, &out, "Erro ao deletar informação"); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Files ---

// ListFiles fetches metadata for all attached files. The console can
// only display these; file mutation lives entirely server-side.
func (c *Client) ListFiles(ctx context.Context, token string) ([]models.FileInfo, error) {
	var out []models.FileInfo
	if err := c.do(ctx, http.MethodGet, "/file", token, nil, &out, "Erro ao buscar arquivos"); err != nil {
		return nil, err
	}
	return out, nil
}

// do runs one authenticated round trip. On a non-2xx status it extracts
// the server's "message" field when the body is parseable JSON, otherwise
// falls back to the per-operation message. A nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fallback}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: connectionErrMsg}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: connectionErrMsg}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp.Body, fallback)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Status: resp.StatusCode, Message: fallback}
	}
	return nil
}

// errorMessage pulls the "message" field out of an error response body,
// falling back to the operation's fixed message.
func errorMessage(body io.Reader, fallback string) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fallback
}
