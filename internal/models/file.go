package models

import "time"

// FileInfo describes a file attached to an information record. Files are
// owned entirely by the remote API; the console only lists them.
type FileInfo struct {
	ID           int       `json:"id"`
	OriginalName string    `json:"originalName"`
	FileName     string    `json:"fileName"`
	Path         string    `json:"path"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
