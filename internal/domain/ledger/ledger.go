package ledger

import (
	"context"
	"errors"

	"invoicex-backend/internal/domain/activity"
	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/investment"
)

// Mode selects one of the two isolated ledgers. They never merge; switching
// modes swaps the whole active ledger.
type Mode string

const (
	ModeDemo Mode = "demo"
	ModeLive Mode = "live"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDemo, ModeLive:
		return Mode(s), nil
	}
	return "", ErrUnknownMode
}

var ErrUnknownMode = errors.New("unknown ledger mode")

// Ledger is the full state of one operating mode: invoices (newest-first),
// the immutable investment list, the wallet balance, and the activity log
// (newest-first).
type Ledger struct {
	Invoices    []invoice.Invoice
	Investments []investment.Investment
	Balance     float64
	Activity    []activity.Entry
}

// Store is the persistence contract the funding engine runs against.
//
// Update applies fn to a private copy of the mode's ledger and persists it
// only when fn returns nil, so a rejected operation leaves the stored ledger
// untouched. Stores serialize Updates per mode; readers never observe a
// partially applied mutation.
type Store interface {
	Load(ctx context.Context, mode Mode) (*Ledger, error)
	Update(ctx context.Context, mode Mode, fn func(l *Ledger) error) error
}

// FindInvoice returns a pointer into l.Invoices, or ErrNotFound.
func (l *Ledger) FindInvoice(invoiceID string) (*invoice.Invoice, error) {
	for i := range l.Invoices {
		if l.Invoices[i].InvoiceID == invoiceID {
			return &l.Invoices[i], nil
		}
	}
	return nil, invoice.ErrNotFound
}

// PrependInvoice inserts at the head; new mints are listed newest-first.
func (l *Ledger) PrependInvoice(inv invoice.Invoice) {
	l.Invoices = append([]invoice.Invoice{inv}, l.Invoices...)
}

// PrependActivity inserts at the head; the log is kept newest-first.
func (l *Ledger) PrependActivity(e activity.Entry) {
	l.Activity = append([]activity.Entry{e}, l.Activity...)
}

// InvestedTotal sums the investment amounts recorded against one invoice.
func (l *Ledger) InvestedTotal(invoiceID string) float64 {
	var total float64
	for _, iv := range l.Investments {
		if iv.InvoiceID == invoiceID {
			total += iv.Amount
		}
	}
	return total
}

// Clone deep-copies the ledger so callers can mutate freely.
func (l *Ledger) Clone() *Ledger {
	out := &Ledger{
		Invoices:    make([]invoice.Invoice, len(l.Invoices)),
		Investments: make([]investment.Investment, len(l.Investments)),
		Balance:     l.Balance,
		Activity:    make([]activity.Entry, len(l.Activity)),
	}
	copy(out.Invoices, l.Invoices)
	copy(out.Investments, l.Investments)
	copy(out.Activity, l.Activity)
	for i := range out.Invoices {
		if r := out.Invoices[i].Risk; r != nil {
			rc := *r
			out.Invoices[i].Risk = &rc
		}
	}
	for i := range out.Activity {
		if a := out.Activity[i].Amount; a != nil {
			ac := *a
			out.Activity[i].Amount = &ac
		}
	}
	return out
}
