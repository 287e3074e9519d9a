package repository

import "context"

// CategoryRepository defines data access for the category registry.
type CategoryRepository interface {
	// Create inserts the category unless it already exists.
	// Returns created=false (and no error) when the name was present.
	Create(ctx context.Context, name string) (created bool, err error)

	// List returns all category names.
	List(ctx context.Context) ([]string, error)

	// Delete removes the category if present; removing an absent name is
	// not an error.
	Delete(ctx context.Context, name string) error
}
