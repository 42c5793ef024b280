package lending

import (
	"time"

	"booklend/internal/domain/order"
)

type BorrowInput struct {
	BookID  uint64    `json:"book_id"`
	DueDate time.Time `json:"due_date"`
}

type CloseInput struct {
	OrderID    uint64    `json:"order_id"`
	ActualDate time.Time `json:"actual_date"`
}

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

func toDTO(o *order.Order) *OrderDTO {
	return &OrderDTO{
		ID:               o.ID,
		BookID:           o.BookID,
		BookName:         o.BookName,
		UserID:           o.UserID,
		Open:             o.Open,
		BorrowDate:       o.BorrowDate,
		DueDate:          o.DueDate,
		ActualReturnDate: o.ActualReturnDate,
	}
}
