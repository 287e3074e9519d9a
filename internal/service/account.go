package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"earsip/internal/auth"
	"earsip/internal/config"
	"earsip/internal/model"
	"earsip/internal/repository"
)

// AccountService is the account directory: registration, login and
// deployment-time admin seeding. Results never carry password hashes.
type AccountService interface {
	// SeedAdmin creates the configured admin account once. It is a no-op
	// when the deployment supplies no email or password, and when the email
	// is already registered.
	SeedAdmin(ctx context.Context, cfg config.AdminConfig) error

	// Register creates a new active account. The role must belong to the
	// known role set; the email must be free.
	Register(ctx context.Context, name, email, password string, role model.Role) (*model.Account, error)

	// Login authenticates an active account by email and password.
	Login(ctx context.Context, email, password string) (*model.Account, error)
}

type accountService struct {
	repo   repository.AccountRepository
	hasher auth.PasswordHasher
	log    *zap.Logger
}

// NewAccountService constructs a new AccountService.
func NewAccountService(repo repository.AccountRepository, hasher auth.PasswordHasher, log *zap.Logger) AccountService {
	return &accountService{repo: repo, hasher: hasher, log: log}
}

func (s *accountService) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		s.log.Info("admin seeding disabled: no credentials configured")
		return nil
	}

	if _, err := s.repo.FindByEmail(ctx, cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Admin"
	}
	_, err := s.create(ctx, name, cfg.Email, cfg.Password, model.RoleAdmin)
	if errors.Is(err, ErrDuplicateEmail) {
		// Lost a race against another instance seeding the same account.
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info("admin account seeded", zap.String("email", cfg.Email))
	return nil
}

func (s *accountService) Register(ctx context.Context, name, email, password string, role model.Role) (*model.Account, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	email = strings.TrimSpace(email)
	if name = strings.TrimSpace(name); name == "" || email == "" || password == "" {
		return nil, ErrNameRequired
	}

	// Cheap pre-check; the unique index settles concurrent registrations.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("look up account: %w", err)
	}

	return s.create(ctx, name, email, password, role)
}

func (s *accountService) create(ctx context.Context, name, email, password string, role model.Role) (*model.Account, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored, err := s.repo.Create(ctx, &model.Account{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	out := stored.Sanitized()
	return &out, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*model.Account, error) {
	acc, err := s.repo.FindActiveByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		return nil, ErrBadCredential
	}

	out := acc.Sanitized()
	return &out, nil
}
