package memory

import (
	"context"
	"sync"

	"invoicex-backend/internal/domain/ledger"
)

// Store keeps ledgers in process memory. The demo ledger lives here for the
// whole process lifetime; the live ledger can too when no database is
// configured. One mutex per store gives the per-ledger mutual-exclusion
// discipline the funding engine relies on.
type Store struct {
	mu      sync.RWMutex
	ledgers map[ledger.Mode]*ledger.Ledger
}

func NewStore() *Store {
	return &Store{ledgers: make(map[ledger.Mode]*ledger.Ledger)}
}

// Seed installs the starting ledger for a mode, replacing any existing one.
func (s *Store) Seed(mode ledger.Mode, l *ledger.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[mode] = l.Clone()
}

// Load returns a deep copy; callers can inspect it without holding any lock.
func (s *Store) Load(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.ledgers[mode]; ok {
		return l.Clone(), nil
	}
	return ledger.NewLiveLedger(), nil
}

// Update applies fn to a working copy and swaps it in only when fn succeeds,
// so a rejected operation leaves the stored ledger byte-for-byte unchanged.
func (s *Store) Update(ctx context.Context, mode ledger.Mode, fn func(l *ledger.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.ledgerLocked(mode).Clone()
	if err := fn(work); err != nil {
		return err
	}
	s.ledgers[mode] = work
	return nil
}

func (s *Store) ledgerLocked(mode ledger.Mode) *ledger.Ledger {
	if l, ok := s.ledgers[mode]; ok {
		return l
	}
	// Unseeded modes start empty with the live opening balance.
	l := ledger.NewLiveLedger()
	s.ledgers[mode] = l
	return l
}
