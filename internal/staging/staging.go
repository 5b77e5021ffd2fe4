// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package staging holds attachment uploads in memory while an
// information form is being filled in. Files never reach the remote API
// from here — upload is a capability the API owns and the editor does
// not exercise — so the area is a bounded, self-expiring holding pen.
package staging

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize caps a single staged attachment.
	MaxFileSize = 50 << 20

	// DefaultTTL is how long an unclaimed staged file survives before
	// the sweeper discards it.
	DefaultTTL = 1 * time.Hour
)

// ErrTypeNotAllowed is returned for files outside the PDF/DOC/DOCX
// allow-list. Callers surface it as the standard warning toast.
var ErrTypeNotAllowed = errors.New("tipo de arquivo não permitido")

// TypeWarning is the user-facing message when one or more selected files
// were dropped by the allow-list.
const TypeWarning = "Alguns arquivos foram ignorados. Apenas PDF e DOCX são permitidos."

// allowedTypes is the attachment MIME allow-list.
var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// File is a staged attachment.
type File struct {
	ID           string
	OriginalName string
	Mimetype     string
	Size         int64
	Data         []byte
	StagedAt     time.Time
}

// Area is an in-memory staging area with TTL-based expiry.
type Area struct {
	mu    sync.Mutex
	files map[string]*File
	ttl   time.Duration
	stop  chan struct{}
}

// NewArea creates a staging area. A ttl of 0 uses DefaultTTL. A
// background sweeper discards files that were never submitted.
func NewArea(ttl time.Duration) *Area {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	a := &Area{
		files: make(map[string]*File),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.sweep()
			case <-a.stop:
				return
			}
		}
	}()

	return a
}

// Stop terminates the background sweeper.
func (a *Area) Stop() {
	close(a.stop)
}

// Add stages a file. declaredType is the MIME type from the multipart
// part header; when it is absent or opaque the content is sniffed.
// Files outside the allow-list are rejected with ErrTypeNotAllowed.
func (a *Area) Add(name, declaredType string, data []byte) (*File, error) {
	mimetype := normalizeType(declaredType, data)
	if !allowedTypes[mimetype] {
		return nil, ErrTypeNotAllowed
	}

	f := &File{
		ID:           uuid.New().String(),
		OriginalName: name,
		Mimetype:     mimetype,
		Size:         int64(len(data)),
		Data:         data,
		StagedAt:     time.Now(),
	}

	a.mu.Lock()
	a.files[f.ID] = f
	a.mu.Unlock()

	return f, nil
}

// Get returns a staged file by ID, or nil when absent or expired.
func (a *Area) Get(id string) *File {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, ok := a.files[id]
	if !ok || time.Since(f.StagedAt) > a.ttl {
		return nil
	}
	return f
}

// Remove discards a staged file. Removing an absent ID is a no-op.
func (a *Area) Remove(id string) {
	a.mu.Lock()
	delete(a.files, id)
	a.mu.Unlock()
}

// List returns the staged files for the given IDs, skipping any that
// have expired or were removed. Used to re-render the staged list.
func (a *Area) List(ids []string) []*File {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []*File
	for _, id := range ids {
		if f, ok := a.files[id]; ok && time.Since(f.StagedAt) <= a.ttl {
			out = append(out, f)
		}
	}
	return out
}

// sweep discards staged files past their TTL.
func (a *Area) sweep() {
	cutoff := time.Now().Add(-a.ttl)

	a.mu.Lock()
	defer a.mu.Unlock()

	for id, f := range a.files {
		if f.StagedAt.Before(cutoff) {
			delete(a.files, id)
		}
	}
}

// normalizeType resolves the effective MIME type for filtering. The
// declared multipart type wins when present (DOCX sniffs as a bare zip,
// so content sniffing alone cannot admit it); opaque declarations fall
// back to sniffing the first bytes.
func normalizeType(declared string, data []byte) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if idx := strings.IndexByte(declared, ';'); idx != -1 {
		declared = strings.TrimSpace(declared[:idx])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	n := len(data)
	if n > 512 {
		n = 512
	}
	sniffed := http.DetectContentType(data[:n])
	if idx := strings.IndexByte(sniffed, ';'); idx != -1 {
		sniffed = strings.TrimSpace(sniffed[:idx])
	}
	return sniffed
}
