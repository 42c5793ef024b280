package accountmock

import (
	"context"
	"errors"

	domain "booklend/internal/domain/account"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("accountmock: method not implemented")

// Repo is a function-backed mock that satisfies account.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Account) error
	GetByNameFn      func(ctx context.Context, kind domain.Kind, name string) (*domain.Account, error)
	GetByAccountIDFn func(ctx context.Context, accountID string) (*domain.Account, error)
	UpdatePasswordFn func(ctx context.Context, accountID, newPassword string) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return errUnimplemented
}

func (m *Repo) GetByName(ctx context.Context, kind domain.Kind, name string) (*domain.Account, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, kind, name)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByAccountID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, errUnimplemented
}

func (m *Repo) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, accountID, newPassword)
	}
	return errUnimplemented
}
