package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earsip/internal/metrics"
	"earsip/internal/model"
	"earsip/internal/policy"
	"earsip/internal/repository"
	"earsip/internal/storage"
)

// Documents are stored under a plausible-but-bounded year; out-of-range
// values are rejected here rather than trusting the UI layer alone.
const (
	MinYear = 1900
	MaxYear = 2100
)

// UploadInput carries everything needed to archive a new document.
type UploadInput struct {
	Title       string
	Category    string
	Description string
	Year        int
	File        io.Reader
	Size        int64
	Filename    string
}

// MetadataUpdate is the caller-facing partial update; nil fields are left
// unchanged.
type MetadataUpdate = repository.MetadataPatch

// DocumentService defines the use cases for the document archive.
// Every mutating operation takes the acting account and is gated through
// the policy package before any repository or blob store call.
type DocumentService interface {
	// Upload stores the file in the blob store, creates the document record,
	// and rolls the blob back if the record insert fails.
	Upload(ctx context.Context, actor *model.Account, in UploadInput) (*model.Document, error)

	// List returns documents matching the filter, most recent upload first.
	List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Open returns the document's file content as a streaming reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Document, error)

	// PresignDownload returns a time-limited URL for the document's file.
	PresignDownload(ctx context.Context, id string, expiry time.Duration) (string, error)

	// UpdateMetadata merges the patch into the document. The file handle,
	// uploader and upload time are never touched.
	UpdateMetadata(ctx context.Context, actor *model.Account, id string, patch MetadataUpdate) error

	// ReplaceFile stores a new blob, swaps the record over to it, then
	// deletes the old blob best-effort.
	ReplaceFile(ctx context.Context, actor *model.Account, id string, file io.Reader, size int64, filename string) error

	// Delete removes the blob and then the record.
	Delete(ctx context.Context, actor *model.Account, id string) error
}

type documentService struct {
	store  storage.Store
	repo   repository.DocumentRepository
	log    *zap.Logger
	stats *metrics.ArchiveMetrics
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Store, repo repository.DocumentRepository, log *zap.Logger, m *metrics.ArchiveMetrics) DocumentService {
	return &documentService{store: store, repo: repo, log: log, stats: m}
}

// objectKey derives a fresh blob key: UUID plus the original extension,
// under the documents/ prefix.
func objectKey(originalFilename string) string {
	return filepath.ToSlash(filepath.Join("documents", uuid.New().String()+filepath.Ext(originalFilename)))
}

func (s *documentService) Upload(ctx context.Context, actor *model.Account, in UploadInput) (*model.Document, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.File == nil || in.Size == 0 {
		return nil, ErrFileRequired
	}
	if in.Year < MinYear || in.Year > MaxYear {
		return nil, ErrYearOutOfRange
	}

	key := objectKey(in.Filename)
	_, err := s.store.Put(ctx, key, in.File, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:               uuid.New().String(),
		Title:            in.Title,
		Category:         in.Category,
		Description:      in.Description,
		Year:             in.Year,
		StoragePath:      key,
		OriginalFilename: in.Filename,
		UploaderID:       actor.ID,
		UploadedAt:       time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: reclaim the blob so no unreachable object survives.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.stats.Uploads.Inc()
	return stored, nil
}

func (s *documentService) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	return s.repo.List(ctx, f)
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read from storage: %w", err)
	}
	return rc, doc, nil
}

func (s *documentService) PresignDownload(ctx context.Context, id string, expiry time.Duration) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, doc.StoragePath, expiry)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return u, nil
}

func (s *documentService) UpdateMetadata(ctx context.Context, actor *model.Account, id string, patch MetadataUpdate) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanEdit(actor, doc) {
		return ErrForbidden
	}
	if patch.Title != nil && *patch.Title == "" {
		return ErrTitleRequired
	}
	if patch.Year != nil && (*patch.Year < MinYear || *patch.Year > MaxYear) {
		return ErrYearOutOfRange
	}
	if err := s.repo.UpdateMetadata(ctx, id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *documentService) ReplaceFile(ctx context.Context, actor *model.Account, id string, file io.Reader, size int64, filename string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanEdit(actor, doc) {
		return ErrForbidden
	}
	if file == nil || size == 0 {
		return ErrFileRequired
	}

	key := objectKey(filename)
	if _, err := s.store.Put(ctx, key, file, storage.PutObjectOptions{
		Size:        size,
		ContentType: "application/pdf",
		Metadata: map[string]string{
			"original-filename": filename,
		},
	}); err != nil {
		return fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.UpdateFile(ctx, id, key, filename, time.Now().UTC()); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("db save failed: %w", err)
	}

	// Best-effort cleanup of the previous blob. A stale object is preferable
	// to losing the new upload, so failure is surfaced as a warning only.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		s.stats.BlobCleanupFailures.Inc()
		s.log.Warn("stale blob left after file replacement",
			zap.String("document_id", id),
			zap.String("storage_path", doc.StoragePath),
			zap.Error(err),
		)
	}
	s.stats.Replacements.Inc()
	return nil
}

func (s *documentService) Delete(ctx context.Context, actor *model.Account, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(actor, doc) {
		return ErrForbidden
	}
	// Blob first: a crash between the two steps leaves a record pointing at
	// a missing blob, which is recoverable, instead of a leaked blob no
	// record reaches.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.stats.Deletes.Inc()
	return nil
}
