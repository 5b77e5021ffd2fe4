package handlers

import (
	"net/http"

	"wikisend/internal/render"
)

// FilesList renders the read-only listing of files attached to articles.
// File storage is owned entirely by the remote API; nothing here mutates.
func (h *Wiki) FilesList(w http.ResponseWriter, r *http.Request) {
	files, err := h.client.ListFiles(r.Context(), h.token(r))
	if err != nil {
		h.loadError(w, r, "files", err)
		return
	}

	h.renderer.Page(w, r, "files_list", &render.PageData{
		Title:   "Arquivos",
		Section: "files",
		Data:    map[string]any{"Items": files},
	})
}
