package orders

import (
	"context"
	"time"

	"booklend/internal/domain/account"
	"booklend/internal/domain/order"
)

type Usecase struct{ repo order.Repository }

func NewUsecase(r order.Repository) *Usecase { return &Usecase{repo: r} }

type OrderDTO struct {
	ID               uint64     `json:"id"`
	BookID           uint64     `json:"book_id"`
	BookName         string     `json:"book_name"`
	UserID           string     `json:"user_id"`
	Open             bool       `json:"open"`
	BorrowDate       time.Time  `json:"borrow_date"`
	DueDate          time.Time  `json:"due_date"`
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
}

func toDTOs(in []order.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(in))
	for i := range in {
		o := &in[i]
		out = append(out, OrderDTO{
			ID:               o.ID,
			BookID:           o.BookID,
			BookName:         o.BookName,
			UserID:           o.UserID,
			Open:             o.Open,
			BorrowDate:       o.BorrowDate,
			DueDate:          o.DueDate,
			ActualReturnDate: o.ActualReturnDate,
		})
	}
	return out
}

// ListAll returns every order; administrator capability required.
func (u *Usecase) ListAll(ctx context.Context, actor account.Identity) ([]OrderDTO, error) {
	if !actor.Kind.CanViewAllOrders() {
		return nil, order.ErrNotAuthorized
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(all), nil
}

// ListMine returns the acting identity's own orders. The membership filter
// runs in the store; the result is identical to filtering the full set.
func (u *Usecase) ListMine(ctx context.Context, actor account.Identity) ([]OrderDTO, error) {
	mine, err := u.repo.ListByUserID(ctx, actor.AccountID)
	if err != nil {
		return nil, err
	}
	return toDTOs(mine), nil
}
