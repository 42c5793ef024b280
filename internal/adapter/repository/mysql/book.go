package mysql

import (
	"context"

	bookDomain "booklend/internal/domain/book"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) List(ctx context.Context) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Find(&out)
	return out, res.Error
}

func (r *BookRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock; call inside a transaction.
func (r *BookRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}
