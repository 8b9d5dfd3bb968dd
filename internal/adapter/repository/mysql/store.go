package mysql

import (
	"context"

	"invoicex-backend/internal/domain/activity"
	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/investment"
	"invoicex-backend/internal/domain/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Wallet holds the scalar balance per mode. Locking this row FOR UPDATE is
// what serializes concurrent mutations of one ledger.
type Wallet struct {
	Mode    string  `gorm:"primaryKey;size:8;column:mode"`
	Balance float64 `gorm:"type:decimal(18,2);column:balance"`
}

func (Wallet) TableName() string { return "wallets" }

type Store struct{ db *gorm.DB }

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Migrate creates the ledger tables and ensures the mode's wallet row exists.
func (s *Store) Migrate(mode ledger.Mode, openingBalance float64) error {
	if err := s.db.AutoMigrate(&invoice.Invoice{}, &investment.Investment{}, &activity.Entry{}, &Wallet{}); err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Wallet{Mode: string(mode), Balance: openingBalance}).Error
}

func (s *Store) Load(ctx context.Context, mode ledger.Mode) (*ledger.Ledger, error) {
	return loadLedger(s.db.WithContext(ctx), mode, false)
}

// Update runs fn inside a transaction with the wallet row locked up-front, so
// at most one mutation per ledger is in flight and a failed fn rolls back
// every row it touched.
func (s *Store) Update(ctx context.Context, mode ledger.Mode, fn func(l *ledger.Ledger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := loadLedger(tx, mode, true)
		if err != nil {
			return err
		}
		if err := fn(l); err != nil {
			return err
		}
		return persistLedger(tx, mode, l)
	})
}

func loadLedger(tx *gorm.DB, mode ledger.Mode, forUpdate bool) (*ledger.Ledger, error) {
	var w Wallet
	q := tx.Where("mode = ?", string(mode))
	// sqlite (tests) has no FOR UPDATE; its transactions serialize writers anyway.
	if forUpdate && tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&w).Error; err != nil {
		return nil, err
	}

	l := &ledger.Ledger{Balance: w.Balance}
	if err := tx.Where("mode = ?", string(mode)).
		Order("id DESC").Find(&l.Invoices).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("mode = ?", string(mode)).
		Order("id ASC").Find(&l.Investments).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("mode = ?", string(mode)).
		Order("id DESC").Find(&l.Activity).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// persistLedger writes the mutated snapshot back. New rows carry a zero
// numeric PK and are inserted; existing invoices are saved whole (only mint
// and the funded/repaid columns ever change). Investments and activity
// entries are append-only so existing rows are never rewritten.
func persistLedger(tx *gorm.DB, mode ledger.Mode, l *ledger.Ledger) error {
	for i := range l.Invoices {
		inv := &l.Invoices[i]
		if inv.ID == 0 {
			if err := tx.Create(inv).Error; err != nil {
				return err
			}
		} else if err := tx.Save(inv).Error; err != nil {
			return err
		}
	}
	for i := range l.Investments {
		txn := &l.Investments[i]
		if txn.ID != 0 {
			continue
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
	}
	for i := range l.Activity {
		e := &l.Activity[i]
		if e.ID != 0 {
			continue
		}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
	}
	return tx.Model(&Wallet{}).Where("mode = ?", string(mode)).
		Update("balance", l.Balance).Error
}
