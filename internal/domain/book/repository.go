package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id uint64) (*Book, error)
	// GetByIDForUpdate locks the row for the remainder of the enclosing
	// transaction. Only meaningful inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Book, error)
	Save(ctx context.Context, b *Book) error
}
