package ordermock

import (
	"context"
	"errors"

	domain "booklend/internal/domain/order"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("ordermock: method not implemented")

// Repo is a function-backed mock that satisfies order.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, o *domain.Order) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Order, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Order, error)
	SaveFn             func(ctx context.Context, o *domain.Order) error
	ListAllFn          func(ctx context.Context) ([]domain.Order, error)
	ListByUserIDFn     func(ctx context.Context, userID string) ([]domain.Order, error)
	OpenByBookIDFn     func(ctx context.Context, bookID uint64) (*domain.Order, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Order, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, o *domain.Order) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Order, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) OpenByBookID(ctx context.Context, bookID uint64) (*domain.Order, error) {
	if m.OpenByBookIDFn != nil {
		return m.OpenByBookIDFn(ctx, bookID)
	}
	return nil, errUnimplemented
}
