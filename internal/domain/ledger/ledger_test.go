package ledger

import (
	"errors"
	"testing"
	"time"

	"invoicex-backend/internal/domain/invoice"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"demo", "live"} {
		m, err := ParseMode(s)
		if err != nil || string(m) != s {
			t.Fatalf("ParseMode(%q) = %v, %v", s, m, err)
		}
	}
	if _, err := ParseMode("staging"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode(staging) err = %v, want ErrUnknownMode", err)
	}
}

func TestFindInvoice(t *testing.T) {
	l := NewDemoLedger(time.Now().UTC())
	inv, err := l.FindInvoice("inv_demo_4")
	if err != nil {
		t.Fatalf("FindInvoice: %v", err)
	}
	if inv.BuyerName != "Omega Construct" {
		t.Fatalf("wrong invoice: %+v", inv)
	}
	if _, err := l.FindInvoice("inv_nope"); !errors.Is(err, invoice.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInvestedTotal(t *testing.T) {
	l := NewDemoLedger(time.Now().UTC())
	if got := l.InvestedTotal("inv_demo_7"); got != 5000 {
		t.Fatalf("InvestedTotal(inv_demo_7) = %v, want 5000", got)
	}
	if got := l.InvestedTotal("inv_demo_3"); got != 0 {
		t.Fatalf("InvestedTotal(inv_demo_3) = %v, want 0", got)
	}
}

func TestClone_IsDeep(t *testing.T) {
	l := NewDemoLedger(time.Now().UTC())
	c := l.Clone()

	c.Balance = 1
	c.Invoices[0].FundedAmount = 99999
	c.Invoices[0].Risk.Grade = "F"
	c.PrependInvoice(invoice.Invoice{InvoiceID: "inv_x"})

	if l.Balance != DemoOpeningBalance {
		t.Fatalf("clone mutation leaked into balance")
	}
	if l.Invoices[0].FundedAmount == 99999 {
		t.Fatalf("clone mutation leaked into invoice")
	}
	if l.Invoices[0].Risk.Grade == "F" {
		t.Fatalf("clone mutation leaked into shared risk pointer")
	}
	if len(l.Invoices) != 8 {
		t.Fatalf("clone append leaked into invoice list")
	}
}

func TestDemoSeed_Consistency(t *testing.T) {
	l := NewDemoLedger(time.Now().UTC())
	if l.Balance != DemoOpeningBalance {
		t.Fatalf("balance = %v", l.Balance)
	}
	for i := range l.Invoices {
		inv := &l.Invoices[i]
		if inv.FundedAmount < 0 || inv.FundedAmount > inv.Amount {
			t.Fatalf("seed invoice %s breaks funded bounds", inv.InvoiceID)
		}
		if inv.Mode != string(ModeDemo) {
			t.Fatalf("seed invoice %s carries mode %q", inv.InvoiceID, inv.Mode)
		}
	}
	repaid, err := l.FindInvoice("inv_demo_7")
	if err != nil || repaid.Status() != invoice.StatusRepaid {
		t.Fatalf("inv_demo_7 should be REPAID in the seed")
	}
}

func TestNewLiveLedger_Empty(t *testing.T) {
	l := NewLiveLedger()
	if l.Balance != LiveOpeningBalance {
		t.Fatalf("balance = %v, want %v", l.Balance, LiveOpeningBalance)
	}
	if len(l.Invoices) != 0 || len(l.Investments) != 0 || len(l.Activity) != 0 {
		t.Fatalf("live ledger must start empty")
	}
}
