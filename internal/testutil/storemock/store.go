package storemock

import (
	"context"
	"errors"

	"invoicex-backend/internal/domain/ledger"
)

// Ensure compile-time compliance
var _ ledger.Store = (*Store)(nil)

var errUnimplemented = errors.New("storemock: method not implemented")

// Store is a function-backed mock that satisfies ledger.Store.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type Store struct {
	LoadFn   func(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error)
	UpdateFn func(ctx context.Context, mode ledger.Mode, fn func(l *ledger.Ledger) error) error
}

func New() *Store { return &Store{} }

func (m *Store) Load(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error) {
	if m.LoadFn != nil {
		return m.LoadFn(ctx, mode)
	}
	return nil, errUnimplemented
}

func (m *Store) Update(ctx context.Context, mode ledger.Mode, fn func(l *ledger.Ledger) error) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, mode, fn)
	}
	return errUnimplemented
}

// Passthrough returns a Store backed by a single in-memory ledger: Update
// applies fn directly and Load hands back the same pointer. Handy when a test
// wants engine semantics without store isolation.
func Passthrough(l *ledger.Ledger) *Store {
	return &Store{
		LoadFn: func(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error) {
			return l, nil
		},
		UpdateFn: func(ctx context.Context, mode ledger.Mode, fn func(*ledger.Ledger) error) error {
			return fn(l)
		},
	}
}
