package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/investment"
	"invoicex-backend/internal/domain/ledger"
)

// openTestStore creates an in-memory sqlite DB with the ledger schema and a
// live wallet row.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := NewStore(db)
	if err := s.Migrate(ledger.ModeLive, ledger.LiveOpeningBalance); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func testInvoice(invoiceID string, amount float64) invoice.Invoice {
	return invoice.Invoice{
		InvoiceID:     invoiceID,
		Mode:          string(ledger.ModeLive),
		SMEAddress:    "0x71C...9A21",
		BuyerName:     "TechCorp International",
		InvoiceNumber: "INV-2025-010",
		Amount:        amount,
		Currency:      "USD",
		DueDate:       "2025-09-30",
		Description:   "Live-mode receivable",
		Risk:          &invoice.RiskAnalysis{Score: 85, Grade: "A", Justification: "ok", RecommendedAPR: 8.5},
		CreatedAt:     time.Now().UTC(),
	}
}

func TestMigrate_SeedsWalletOnce(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// balance mutations survive a re-migrate (OnConflict DoNothing)
	if err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
		l.Balance = 777
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Migrate(ledger.ModeLive, ledger.LiveOpeningBalance); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}
	l, err := s.Load(ctx, ledger.ModeLive)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Balance != 777 {
		t.Fatalf("re-migrate reset the wallet: %v", l.Balance)
	}
}

func TestUpdate_PersistsMintInvestRepayShape(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// mint
	if err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
		l.PrependInvoice(testInvoice("inv_live_1", 1000))
		return nil
	}); err != nil {
		t.Fatalf("mint update: %v", err)
	}

	// invest
	if err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
		inv, err := l.FindInvoice("inv_live_1")
		if err != nil {
			return err
		}
		inv.FundedAmount += 400
		l.Balance -= 400
		l.Investments = append(l.Investments, investment.Investment{
			InvestmentID: "tx_live_1",
			Mode:         string(ledger.ModeLive),
			InvoiceID:    "inv_live_1",
			InvestorAddr: "0xabc...def",
			Amount:       400,
			Timestamp:    time.Now().UTC(),
		})
		return nil
	}); err != nil {
		t.Fatalf("invest update: %v", err)
	}

	l, err := s.Load(ctx, ledger.ModeLive)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	inv, err := l.FindInvoice("inv_live_1")
	if err != nil {
		t.Fatalf("FindInvoice: %v", err)
	}
	if inv.FundedAmount != 400 || inv.Status() != invoice.StatusFunding {
		t.Fatalf("persisted invoice: funded=%v status=%s", inv.FundedAmount, inv.Status())
	}
	if inv.Risk == nil || inv.Risk.Grade != "A" {
		t.Fatalf("risk columns lost on round trip: %+v", inv.Risk)
	}
	if l.Balance != ledger.LiveOpeningBalance-400 {
		t.Fatalf("balance = %v", l.Balance)
	}
	if len(l.Investments) != 1 || l.Investments[0].ID == 0 {
		t.Fatalf("investment row missing or without PK: %+v", l.Investments)
	}

	// repay flag round-trips and derives REPAID
	if err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
		inv, err := l.FindInvoice("inv_live_1")
		if err != nil {
			return err
		}
		inv.Repaid = true
		return nil
	}); err != nil {
		t.Fatalf("repay update: %v", err)
	}
	l, _ = s.Load(ctx, ledger.ModeLive)
	inv, _ = l.FindInvoice("inv_live_1")
	if inv.Status() != invoice.StatusRepaid {
		t.Fatalf("status after repay = %s", inv.Status())
	}
}

func TestUpdate_ErrorRollsBackEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("reject")
	err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
		l.PrependInvoice(testInvoice("inv_doomed", 10))
		l.Balance = 0
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update err = %v", err)
	}

	l, _ := s.Load(ctx, ledger.ModeLive)
	if len(l.Invoices) != 0 || l.Balance != ledger.LiveOpeningBalance {
		t.Fatalf("rolled-back update left state: invoices=%d balance=%v", len(l.Invoices), l.Balance)
	}
}

func TestLoad_InvoicesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"inv_a", "inv_b", "inv_c"} {
		if err := s.Update(ctx, ledger.ModeLive, func(l *ledger.Ledger) error {
			l.PrependInvoice(testInvoice(id, 100))
			return nil
		}); err != nil {
			t.Fatalf("Update(%s): %v", id, err)
		}
	}
	l, _ := s.Load(ctx, ledger.ModeLive)
	if len(l.Invoices) != 3 {
		t.Fatalf("invoices = %d", len(l.Invoices))
	}
	if l.Invoices[0].InvoiceID != "inv_c" || l.Invoices[2].InvoiceID != "inv_a" {
		t.Fatalf("ordering = [%s %s %s], want newest first",
			l.Invoices[0].InvoiceID, l.Invoices[1].InvoiceID, l.Invoices[2].InvoiceID)
	}
}

func TestLoad_MissingWalletFails(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(context.Background(), ledger.ModeDemo); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound for unmigrated mode", err)
	}
}
