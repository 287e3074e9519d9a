package model

import "time"

// Document is one archived PDF: its metadata plus a handle into the blob
// store. StoragePath always refers to a live object; delete and replace
// reclaim the old object before or right after the handle changes hands.
type Document struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	Year             int       `json:"year"`
	StoragePath      string    `json:"storage_path"`
	OriginalFilename string    `json:"original_filename"`
	UploaderID       string    `json:"uploader_id"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
