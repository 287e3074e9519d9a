package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"earsip/internal/model"
	"earsip/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = "id, title, category, description, year, storage_path, original_filename, uploader_id, uploaded_at"

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Category,
		&d.Description,
		&d.Year,
		&d.StoragePath,
		&d.OriginalFilename,
		&d.UploaderID,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, category, description, year, storage_path, original_filename, uploader_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Category,
		doc.Description,
		doc.Year,
		doc.StoragePath,
		doc.OriginalFilename,
		doc.UploaderID,
		doc.UploadedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// List returns documents matching the filter, most recently uploaded first.
// The WHERE clause is assembled from the filter's non-zero fields only.
func (r *DocumentPostgres) List(ctx context.Context, f repository.DocumentFilter) ([]model.Document, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Title != "" {
		where = append(where, "title ILIKE '%' || "+arg(f.Title)+" || '%'")
	}
	if f.Category != "" {
		where = append(where, "category = "+arg(f.Category))
	}
	if f.Year != nil {
		where = append(where, "year = "+arg(*f.Year))
	}
	if f.UploaderID != "" {
		where = append(where, "uploader_id = "+arg(f.UploaderID))
	}

	q := `SELECT ` + documentColumns + ` FROM documents`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY uploaded_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateMetadata merges the patch into the stored row via COALESCE so nil
// fields keep their prior value. File columns are never touched here.
func (r *DocumentPostgres) UpdateMetadata(ctx context.Context, id string, p repository.MetadataPatch) error {
	const q = `
		UPDATE documents
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    category    = COALESCE($3, category),
		    year        = COALESCE($4, year)
		WHERE id = $5
	`
	res, err := r.db.ExecContext(ctx, q, p.Title, p.Description, p.Category, p.Year, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateFile swaps the blob handle, original filename and upload time.
func (r *DocumentPostgres) UpdateFile(ctx context.Context, id, storagePath, originalFilename string, uploadedAt time.Time) error {
	const q = `
		UPDATE documents
		SET storage_path = $1, original_filename = $2, uploaded_at = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, q, storagePath, originalFilename, uploadedAt, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
