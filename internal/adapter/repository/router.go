package repository

import (
	"context"

	"invoicex-backend/internal/domain/ledger"
)

// Router dispatches each mode to its backing store: demo stays in memory,
// live goes to the database when one is configured.
type Router struct {
	stores map[ledger.Mode]ledger.Store
}

func NewRouter() *Router {
	return &Router{stores: make(map[ledger.Mode]ledger.Store)}
}

func (r *Router) Mount(mode ledger.Mode, s ledger.Store) *Router {
	r.stores[mode] = s
	return r
}

func (r *Router) Load(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error) {
	s, err := r.store(mode)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, mode)
}

func (r *Router) Update(ctx context.Context, mode ledger.Mode, fn func(l *ledger.Ledger) error) error {
	s, err := r.store(mode)
	if err != nil {
		return err
	}
	return s.Update(ctx, mode, fn)
}

func (r *Router) store(mode ledger.Mode) (ledger.Store, error) {
	if s, ok := r.stores[mode]; ok {
		return s, nil
	}
	return nil, ledger.ErrUnknownMode
}
