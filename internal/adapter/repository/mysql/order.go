package mysql

import (
	"context"

	orderDomain "booklend/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock; call inside a transaction.
func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *OrderRepository) Save(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID string) ([]orderDomain.Order, error) {
	var out []orderDomain.Order
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&out)
	return out, res.Error
}

func (r *OrderRepository) OpenByBookID(ctx context.Context, bookID uint64) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).
		Where("book_id = ? AND open = ?", bookID, true).
		First(&out)
	return &out, res.Error
}
