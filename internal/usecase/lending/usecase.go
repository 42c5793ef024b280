// Package lending is the core engine: it opens and closes loans while
// keeping each book's availability flag consistent with its open order.
// Every operation runs both of its writes inside one unit-of-work
// transaction, so no other session can observe a book marked unavailable
// without a matching open order, or the reverse.
package lending

import (
	"context"
	"errors"
	"time"

	"booklend/internal/domain/account"
	"booklend/internal/domain/book"
	"booklend/internal/domain/order"
	"booklend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// today truncates to a calendar date in UTC; borrow/return dates carry no
// time-of-day component.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Borrow opens a loan for the acting identity. The due date is taken as
// given; a date in the past is accepted, which is stated policy, not an
// oversight. Fails with book.ErrUnavailable when the book is already out
// and performs no writes in that case.
func (u *Usecase) Borrow(ctx context.Context, actor account.Identity, in BorrowInput) (*OrderDTO, error) {
	if in.BookID == 0 || in.DueDate.IsZero() {
		return nil, errors.New("book id and due date are required")
	}

	var dto *OrderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Books.GetByIDForUpdate(ctx, in.BookID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return book.ErrNotFound
		case err != nil:
			return err
		}

		if !b.Available {
			return book.ErrUnavailable
		}

		o := &order.Order{
			BookID:     b.ID,
			BookName:   b.Name, // snapshot; not re-synced on rename
			UserID:     actor.AccountID,
			Open:       true,
			BorrowDate: today(),
			DueDate:    in.DueDate,
		}
		if err := r.Orders.Create(ctx, o); err != nil {
			return err
		}

		b.Available = false
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}

		dto = toDTO(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Close transitions a loan to closed and re-releases the book. Only an
// administrator may close; the capability check runs before anything is
// read or written. Closing an already-closed order is rejected with
// order.ErrAlreadyClosed so a double close can never flip availability.
func (u *Usecase) Close(ctx context.Context, actor account.Identity, in CloseInput) (*OrderDTO, error) {
	if !actor.Kind.CanCloseOrders() {
		return nil, order.ErrNotAuthorized
	}
	if in.OrderID == 0 || in.ActualDate.IsZero() {
		return nil, errors.New("order id and actual return date are required")
	}

	var dto *OrderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Orders.GetByIDForUpdate(ctx, in.OrderID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return order.ErrNotFound
		case err != nil:
			return err
		}

		if !o.Open {
			return order.ErrAlreadyClosed
		}

		actual := in.ActualDate
		o.Open = false
		o.ActualReturnDate = &actual
		if err := r.Orders.Save(ctx, o); err != nil {
			return err
		}

		b, err := r.Books.GetByIDForUpdate(ctx, o.BookID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return book.ErrNotFound
		case err != nil:
			return err
		}

		// Unconditional set, not a toggle: the invariant guarantees at
		// most one open order per book, so whatever the flag held, the
		// book is available once this order closes.
		b.Available = true
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}

		dto = toDTO(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
