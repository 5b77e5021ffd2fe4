// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"wikisend/internal/staging"
)

// AttachmentStage receives one or more files from the information form
// and stages them in memory. Files outside the PDF/DOC/DOCX allow-list
// are silently dropped from the staged set and a warning is returned
// with the refreshed list. Staged bytes never reach the remote API.
func (h *Wiki) AttachmentStage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, staging.MaxFileSize+1024)
	if err := r.ParseMultipartForm(staging.MaxFileSize); err != nil {
		http.Error(w, "Arquivo muito grande.", http.StatusRequestEntityTooLarge)
		return
	}

	ids := r.Form["file_ids"]
	dropped := false

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			if err != nil {
				slog.Error("open staged upload failed", "name", header.Filename, "error", err)
				dropped = true
				continue
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				slog.Error("read staged upload failed", "name", header.Filename, "error", err)
				dropped = true
				continue
			}

			staged, err := h.attachments.Add(header.Filename, header.Header.Get("Content-Type"), data)
			if err != nil {
				if !errors.Is(err, staging.ErrTypeNotAllowed) {
					slog.Error("stage upload failed", "name", header.Filename, "error", err)
				}
				dropped = true
				continue
			}
			ids = append(ids, staged.ID)
		}
	}

	data := map[string]any{"Files": h.attachments.List(ids)}
	if dropped {
		data["Warning"] = staging.TypeWarning
	}
	h.renderer.Partial(w, "staged_files", data)
}

// AttachmentRemove discards one staged file and re-renders the list.
func (h *Wiki) AttachmentRemove(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()

	removeID := r.FormValue("remove_id")
	h.attachments.Remove(removeID)

	var ids []string
	for _, id := range r.Form["file_ids"] {
		if id != removeID {
			ids = append(ids, id)
		}
	}

	h.renderer.Partial(w, "staged_files", map[string]any{
		"Files": h.attachments.List(ids),
	})
}
