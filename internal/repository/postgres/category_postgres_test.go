package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("new name", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO categories").
			WithArgs("Hukum").
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.Create(ctx, "Hukum")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("existing name is not an error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO categories").
			WithArgs("Hukum").
			WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.Create(ctx, "Hukum")

		assert.NoError(t, err)
		assert.False(t, created)
	})
}

func TestCategoryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT name FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Administrasi").
			AddRow("Keuangan").
			AddRow("SDM"))

	names, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Administrasi", "Keuangan", "SDM"}, names)
}

func TestCategoryPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCategoryPostgres(db)
	ctx := context.Background()

	t.Run("present", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories WHERE name = ?").
			WithArgs("Hukum").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "Hukum"))
	})

	t.Run("absent is idempotent", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories WHERE name = ?").
			WithArgs("Ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "Ghost"))
	})
}
