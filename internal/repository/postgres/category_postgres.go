package postgres

import (
	"context"
	"database/sql"

	"earsip/internal/repository"
)

// CategoryPostgres is a PostgreSQL implementation of repository.CategoryRepository.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres repository.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

// Create inserts the category unless it exists. ON CONFLICT DO NOTHING makes
// the call race-safe; the affected row count tells whether we created it.
func (r *CategoryPostgres) Create(ctx context.Context, name string) (bool, error) {
	const q = `INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns all category names in insertion-independent name order.
func (r *CategoryPostgres) List(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM categories ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes the category; deleting an absent name is a no-op.
func (r *CategoryPostgres) Delete(ctx context.Context, name string) error {
	const q = `DELETE FROM categories WHERE name = $1`
	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
