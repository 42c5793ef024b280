package uowmock

import (
	"context"
	"errors"

	"booklend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

// Passthrough returns a UoW whose WithinTx simply invokes fn against the
// given repos, with no transaction semantics. Good enough for usecase tests:
// the engine's failure paths all return before the first write, so there is
// nothing to roll back.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(r)
	}}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
