package uow

import (
	"context"

	"booklend/internal/domain/book"
	"booklend/internal/domain/order"
)

type Repos struct {
	Books  book.Repository
	Orders order.Repository
}

// UnitOfWork runs fn against repositories bound to a single transaction.
// Borrow and close each touch a book row and an order row; running both
// writes under one transaction keeps availability and open-order state
// consistent for every other session.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
