package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"earsip/internal/model"
	"earsip/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentRows(docs ...model.Document) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "category", "description", "year", "storage_path", "original_filename", "uploader_id", "uploaded_at"})
	for _, d := range docs {
		rows.AddRow(d.ID, d.Title, d.Category, d.Description, d.Year, d.StoragePath, d.OriginalFilename, d.UploaderID, d.UploadedAt)
	}
	return rows
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:               "doc-uuid",
		Title:            "Budget 2023",
		Category:         "Keuangan",
		Description:      "annual budget",
		Year:             2023,
		StoragePath:      "documents/blob.pdf",
		OriginalFilename: "b.pdf",
		UploaderID:       "user-uuid",
		UploadedAt:       now,
	}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Category, doc.Description, doc.Year, doc.StoragePath, doc.OriginalFilename, doc.UploaderID, doc.UploadedAt).
		WillReturnRows(documentRows(*doc))

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Equal(t, doc.Title, result.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnRows(documentRows(model.Document{ID: "doc-1", Title: "t", Year: 2020, UploadedAt: time.Now()}))

		doc, err := repo.FindByID(ctx, "doc-1")

		assert.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Equal(t, "doc-1", doc.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY uploaded_at DESC").
			WillReturnRows(documentRows(
				model.Document{ID: "doc-2", UploadedAt: time.Now()},
				model.Document{ID: "doc-1", UploadedAt: time.Now().Add(-time.Hour)},
			))

		items, err := repo.List(ctx, repository.DocumentFilter{})

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "doc-2", items[0].ID)
	})

	t.Run("all filter fields", func(t *testing.T) {
		year := 2023
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE title ILIKE (.+) AND category = (.+) AND year = (.+) AND uploader_id = (.+) ORDER BY uploaded_at DESC").
			WithArgs("budget", "Keuangan", 2023, "user-1").
			WillReturnRows(documentRows(model.Document{ID: "doc-1", UploadedAt: time.Now()}))

		items, err := repo.List(ctx, repository.DocumentFilter{
			Title:      "budget",
			Category:   "Keuangan",
			Year:       &year,
			UploaderID: "user-1",
		})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty result is a slice, not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE category = ?").
			WithArgs("Hukum").
			WillReturnRows(documentRows())

		items, err := repo.List(ctx, repository.DocumentFilter{Category: "Hukum"})

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestDocumentPostgres_UpdateMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	title := "renamed"
	year := 2024

	t.Run("partial update", func(t *testing.T) {
		mock.ExpectExec("UPDATE documents").
			WithArgs("renamed", nil, nil, 2024, "doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateMetadata(ctx, "doc-1", repository.MetadataPatch{Title: &title, Year: &year})
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE documents").
			WithArgs("renamed", nil, nil, nil, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateMetadata(ctx, "missing", repository.MetadataPatch{Title: &title})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestDocumentPostgres_UpdateFile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("swaps handle", func(t *testing.T) {
		mock.ExpectExec("UPDATE documents").
			WithArgs("documents/new.pdf", "new.pdf", now, "doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFile(ctx, "doc-1", "documents/new.pdf", "new.pdf", now)
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE documents").
			WithArgs("documents/new.pdf", "new.pdf", now, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateFile(ctx, "missing", "documents/new.pdf", "new.pdf", now)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM documents WHERE id = ?").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "doc-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
