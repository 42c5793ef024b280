package mysql

import (
	"context"

	accountDomain "booklend/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *accountDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByName(ctx context.Context, kind accountDomain.Kind, name string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).
		Where("kind = ? AND name = ?", kind, name).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByAccountID(ctx context.Context, accountID string) (*accountDomain.Account, error) {
	var out accountDomain.Account
	res := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&out)
	return &out, res.Error
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	res := r.db.WithContext(ctx).
		Model(&accountDomain.Account{}).
		Where("account_id = ?", accountID).
		Update("password", newPassword)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
