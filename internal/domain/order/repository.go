package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uint64) (*Order, error)
	// GetByIDForUpdate locks the row for the remainder of the enclosing
	// transaction. Only meaningful inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Order, error)
	Save(ctx context.Context, o *Order) error
	ListAll(ctx context.Context) ([]Order, error)
	ListByUserID(ctx context.Context, userID string) ([]Order, error)
	// OpenByBookID returns the open order referencing a book, if any.
	// There is at most one under the availability invariant.
	OpenByBookID(ctx context.Context, bookID uint64) (*Order, error)
}
