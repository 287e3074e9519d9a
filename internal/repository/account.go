package repository

import (
	"context"

	"earsip/internal/model"
)

// AccountRepository defines data access for user accounts.
// Accounts are never physically deleted; deactivation flips the active flag.
type AccountRepository interface {
	// Create inserts a new account and returns the stored row.
	// Returns ErrDuplicateEmail when the email is already taken, relying on
	// the unique index to settle concurrent registrations.
	Create(ctx context.Context, a *model.Account) (*model.Account, error)

	// FindByEmail returns the account with the given email regardless of its
	// active flag, or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.Account, error)

	// FindActiveByEmail returns the active account with the given email, or
	// sql.ErrNoRows.
	FindActiveByEmail(ctx context.Context, email string) (*model.Account, error)
}
