package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyClosed = errors.New("order already closed")
	ErrNotAuthorized = errors.New("not authorized to close orders")
)

// Order records one borrowing cycle of one book by one member. Created by
// borrow, mutated exactly once by close, never deleted.
type Order struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Weak reference to books.id; must resolve at creation time only.
	BookID uint64 `gorm:"column:book_id;not null;index:idx_orders_book_open" json:"book_id"`
	// Snapshot of the book's name at creation; not re-synced on rename.
	BookName string `gorm:"column:book_name;size:255;not null" json:"book_name"`
	// Public account id of the borrower.
	UserID string `gorm:"column:user_id;type:char(32);not null;index:idx_orders_user" json:"user_id"`
	// Open is true while the book is out.
	Open       bool      `gorm:"column:open;not null;index:idx_orders_book_open" json:"open"`
	BorrowDate time.Time `gorm:"column:borrow_date;type:date;not null" json:"borrow_date"`
	// DueDate is supplied by the borrower; a date in the past is accepted.
	DueDate          time.Time  `gorm:"column:due_date;type:date;not null" json:"due_date"`
	ActualReturnDate *time.Time `gorm:"column:actual_return_date;type:date" json:"actual_return_date,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Order) TableName() string { return "orders" }
