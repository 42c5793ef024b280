package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByName(ctx context.Context, kind Kind, name string) (*Account, error)
	GetByAccountID(ctx context.Context, accountID string) (*Account, error)
	UpdatePassword(ctx context.Context, accountID, newPassword string) error
}
