package bookmock

import (
	"context"
	"errors"

	domain "booklend/internal/domain/book"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("bookmock: method not implemented")

// Repo is a function-backed mock that satisfies book.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, b *domain.Book) error
	ListFn             func(ctx context.Context) ([]domain.Book, error)
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Book, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Book, error)
	SaveFn             func(ctx context.Context, b *domain.Book) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return errUnimplemented
}
