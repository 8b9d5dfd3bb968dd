package funding

import (
	"context"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/ledger"
)

// Read side. Queries load a snapshot and never mutate; reads issued while a
// long-latency external call is in flight see pre-operation state.

func (u *Usecase) ListInvoices(ctx context.Context, mode ledger.Mode) ([]InvoiceDTO, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	out := make([]InvoiceDTO, 0, len(l.Invoices))
	for i := range l.Invoices {
		out = append(out, *toInvoiceDTO(&l.Invoices[i]))
	}
	return out, nil
}

func (u *Usecase) GetInvoice(ctx context.Context, mode ledger.Mode, invoiceID string) (*InvoiceDTO, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	inv, err := l.FindInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return toInvoiceDTO(inv), nil
}

func (u *Usecase) ListInvestments(ctx context.Context, mode ledger.Mode) ([]InvestmentDTO, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(l.Investments))
	for _, tx := range l.Investments {
		out = append(out, InvestmentDTO{
			ID:              tx.InvestmentID,
			InvoiceID:       tx.InvoiceID,
			InvestorAddress: tx.InvestorAddr,
			Amount:          tx.Amount,
			Timestamp:       tx.Timestamp,
		})
	}
	return out, nil
}

func (u *Usecase) Balance(ctx context.Context, mode ledger.Mode) (float64, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return 0, err
	}
	return l.Balance, nil
}

// Activity returns the log newest-first.
func (u *Usecase) Activity(ctx context.Context, mode ledger.Mode) ([]ActivityDTO, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	out := make([]ActivityDTO, 0, len(l.Activity))
	for _, e := range l.Activity {
		dto := ActivityDTO{
			ID:        e.EntryID,
			Type:      string(e.Type),
			Message:   e.Message,
			Timestamp: e.Timestamp,
		}
		if e.Amount != nil {
			a := *e.Amount
			dto.Amount = &a
		}
		out = append(out, dto)
	}
	return out, nil
}

func (u *Usecase) Portfolio(ctx context.Context, mode ledger.Mode) (*PortfolioDTO, error) {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	dto := &PortfolioDTO{Balance: l.Balance, InvestmentRows: len(l.Investments)}
	for _, tx := range l.Investments {
		dto.TotalStaked += tx.Amount
	}
	for i := range l.Invoices {
		switch l.Invoices[i].Status() {
		case invoice.StatusFunding:
			dto.FundingCount++
		case invoice.StatusFunded:
			dto.FundedCount++
		case invoice.StatusRepaid:
			dto.RepaidCount++
		}
	}
	return dto, nil
}
