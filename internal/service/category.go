package service

import (
	"context"
	"fmt"
	"strings"

	"earsip/internal/model"
	"earsip/internal/policy"
	"earsip/internal/repository"
)

// CategoryService is the category registry. Mutations require an acting
// account allowed to manage categories; removal never touches documents
// already filed under the name.
type CategoryService interface {
	// EnsureDefaults idempotently guarantees the seed set exists.
	EnsureDefaults(ctx context.Context, names []string) error

	// List returns all category names.
	List(ctx context.Context) ([]string, error)

	// Add creates the category. Returns false without error when the name
	// already exists.
	Add(ctx context.Context, actor *model.Account, name string) (bool, error)

	// Remove deletes the category; removing an absent name is not an error.
	Remove(ctx context.Context, actor *model.Account, name string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService constructs a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) EnsureDefaults(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := s.repo.Create(ctx, name); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

func (s *categoryService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Add(ctx context.Context, actor *model.Account, name string) (bool, error) {
	if !policy.CanManageCategories(actor) {
		return false, ErrForbidden
	}
	if name = strings.TrimSpace(name); name == "" {
		return false, ErrNameRequired
	}
	created, err := s.repo.Create(ctx, name)
	if err != nil {
		return false, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *categoryService) Remove(ctx context.Context, actor *model.Account, name string) error {
	if !policy.CanManageCategories(actor) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
