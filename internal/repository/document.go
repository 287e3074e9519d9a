package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// No business logic here — strictly persistence operations; authorization is
// the service layer's job.

import (
	"context"
	"time"

	"earsip/internal/model"
)

// DocumentFilter narrows a listing. Zero values mean "no constraint".
// Title matches as a case-insensitive substring; the rest are equality.
type DocumentFilter struct {
	Title      string
	Category   string
	Year       *int
	UploaderID string
}

// MetadataPatch carries a partial metadata update. Nil fields keep the
// stored value. File handle, uploader and upload time are never part of a
// patch.
type MetadataPatch struct {
	Title       *string
	Description *string
	Category    *string
	Year        *int
}

// DocumentRepository defines data access for archived documents.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row
	// (may include values set by database defaults).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns documents matching the filter, most recently uploaded
	// first. An empty result is a nil-safe empty slice, not an error.
	List(ctx context.Context, f DocumentFilter) ([]model.Document, error)

	// UpdateMetadata merges the patch into the stored row.
	// Returns sql.ErrNoRows when the document does not exist.
	UpdateMetadata(ctx context.Context, id string, p MetadataPatch) error

	// UpdateFile swaps the blob handle, original filename and upload time.
	// Returns sql.ErrNoRows when the document does not exist.
	UpdateFile(ctx context.Context, id, storagePath, originalFilename string, uploadedAt time.Time) error

	// Delete removes a document by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error
}
