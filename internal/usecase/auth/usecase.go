package auth

import (
	"context"
	"errors"

	"booklend/internal/domain/account"
	"booklend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo account.Repository
	// authorityCode is the out-of-band secret required to register an
	// admin account.
	authorityCode string
}

func NewUsecase(r account.Repository, authorityCode string) *Usecase {
	return &Usecase{repo: r, authorityCode: authorityCode}
}

// Authenticate looks the account up by name within the kind's namespace and
// compares the stored password byte for byte. Plaintext comparison is the
// stated policy of this system; there is no hashing or normalization.
func (u *Usecase) Authenticate(ctx context.Context, in AuthenticateInput) (account.Identity, error) {
	if !in.Kind.Valid() || in.Name == "" {
		return account.Identity{}, account.ErrNotFound
	}

	a, err := u.repo.GetByName(ctx, in.Kind, in.Name)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return account.Identity{}, account.ErrNotFound
	case err != nil:
		return account.Identity{}, err
	}

	if a.Password != in.Password {
		return account.Identity{}, account.ErrWrongPassword
	}
	return a.Identity(), nil
}

// Register creates an account. Admin registrations are gated on the authority
// code; a mismatch creates nothing. Name uniqueness within the kind is
// enforced by the store's unique index, so concurrent sign-ups with the same
// name resolve there instead of racing a pre-check.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (account.Identity, error) {
	if !in.Kind.Valid() {
		return account.Identity{}, errors.New("invalid account kind")
	}
	if in.Name == "" || in.Password == "" {
		return account.Identity{}, errors.New("name and password are required")
	}
	if in.Kind == account.KindAdmin && in.AuthorityCode != u.authorityCode {
		return account.Identity{}, account.ErrUnauthorized
	}

	a := &account.Account{
		AccountID: id.NewID32(),
		Name:      in.Name,
		Password:  in.Password,
		Kind:      in.Kind,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.Identity{}, account.ErrNameTaken
		}
		return account.Identity{}, err
	}
	return a.Identity(), nil
}

// ChangePassword overwrites the stored password unconditionally. It takes
// effect for future authentications only: live sessions keep working with
// the identity they resolved at login.
func (u *Usecase) ChangePassword(ctx context.Context, ident account.Identity, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password is required")
	}
	err := u.repo.UpdatePassword(ctx, ident.AccountID, newPassword)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.ErrNotFound
	}
	return err
}
