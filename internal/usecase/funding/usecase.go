package funding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"invoicex-backend/internal/domain/activity"
	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/investment"
	"invoicex-backend/internal/domain/ledger"
	"invoicex-backend/pkg/id"
)

// Usecase is the sole authority for mutating invoices, investments and the
// wallet balance. Every mutation runs inside Store.Update, so a rejected
// operation leaves the ledger exactly as it was.
type Usecase struct{ store ledger.Store }

func NewUsecase(s ledger.Store) *Usecase { return &Usecase{store: s} }

var ErrInvalidInput = errors.New("invalid input")

// Mint creates an invoice with zero funding at the head of the ledger and
// records a MINT entry carrying the face amount.
func (u *Usecase) Mint(ctx context.Context, mode ledger.Mode, in MintInput) (*InvoiceDTO, error) {
	if in.SMEAddress == "" || in.BuyerName == "" || in.InvoiceNumber == "" ||
		in.Description == "" || in.DueDate == "" || in.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	var dto *InvoiceDTO
	err := u.store.Update(ctx, mode, func(l *ledger.Ledger) error {
		now := time.Now().UTC()
		inv := invoice.Invoice{
			InvoiceID:     id.NewInvoiceID(),
			Mode:          string(mode),
			SMEAddress:    in.SMEAddress,
			BuyerName:     in.BuyerName,
			InvoiceNumber: in.InvoiceNumber,
			Amount:        in.Amount,
			Currency:      in.Currency,
			DueDate:       in.DueDate,
			Description:   in.Description,
			FundedAmount:  0,
			Risk:          in.Risk,
			CreatedAt:     now,
		}
		l.PrependInvoice(inv)
		u.record(l, mode, activity.TypeMint,
			fmt.Sprintf("Minted Invoice #%s", inv.InvoiceNumber), &inv.Amount, now)
		dto = toInvoiceDTO(&inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Invest stakes capital against an open invoice. Overfunding is rejected, not
// clamped; funding exactly to the goal flips the invoice to FUNDED in the
// same operation. The wallet is debited without a sufficiency check — the
// balance may go negative here, while Repay enforces one.
func (u *Usecase) Invest(ctx context.Context, mode ledger.Mode, in InvestInput) (*InvestmentDTO, error) {
	if in.InvestorAddr == "" {
		return nil, ErrInvalidInput
	}

	var dto *InvestmentDTO
	err := u.store.Update(ctx, mode, func(l *ledger.Ledger) error {
		inv, err := l.FindInvoice(in.InvoiceID)
		if err != nil {
			return err
		}
		if inv.Repaid {
			return invoice.ErrAlreadyRepaid
		}
		if in.Amount <= 0 {
			return invoice.ErrInvalidAmount
		}
		if in.Amount > inv.Remaining() {
			return invoice.ErrOverfunded
		}

		now := time.Now().UTC()
		tx := investment.Investment{
			InvestmentID: id.NewTxID(),
			Mode:         string(mode),
			InvoiceID:    inv.InvoiceID,
			InvestorAddr: in.InvestorAddr,
			Amount:       in.Amount,
			Timestamp:    now,
		}
		l.Investments = append(l.Investments, tx)
		inv.FundedAmount += in.Amount
		l.Balance -= in.Amount
		u.record(l, mode, activity.TypeInvest,
			fmt.Sprintf("Invested in %s", inv.BuyerName), &tx.Amount, now)

		dto = &InvestmentDTO{
			ID:              tx.InvestmentID,
			InvoiceID:       tx.InvoiceID,
			InvestorAddress: tx.InvestorAddr,
			Amount:          tx.Amount,
			Timestamp:       tx.Timestamp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Repay settles an invoice for its full face amount. The payer wallet must
// cover the face amount; investors are not credited individually. REPAID is
// terminal — further Invest or Repay calls are rejected.
func (u *Usecase) Repay(ctx context.Context, mode ledger.Mode, in RepayInput) (*InvoiceDTO, error) {
	if in.PayerAddr == "" {
		return nil, ErrInvalidInput
	}

	var dto *InvoiceDTO
	err := u.store.Update(ctx, mode, func(l *ledger.Ledger) error {
		inv, err := l.FindInvoice(in.InvoiceID)
		if err != nil {
			return err
		}
		if inv.Repaid {
			return invoice.ErrAlreadyRepaid
		}
		if l.Balance < inv.Amount {
			return invoice.ErrInsufficientBalance
		}

		now := time.Now().UTC()
		inv.Repaid = true
		l.Balance -= inv.Amount
		u.record(l, mode, activity.TypeRepay,
			fmt.Sprintf("Repaid loan for %s", inv.InvoiceNumber), &inv.Amount, now)
		dto = toInvoiceDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// record appends one immutable activity entry at the head of the log. It is
// never skipped when the surrounding mutation succeeds.
func (u *Usecase) record(l *ledger.Ledger, mode ledger.Mode, typ activity.Type, msg string, amount *float64, now time.Time) {
	var amt *float64
	if amount != nil {
		a := *amount
		amt = &a
	}
	l.PrependActivity(activity.Entry{
		EntryID:   id.NewID32(),
		Mode:      string(mode),
		Type:      typ,
		Message:   msg,
		Timestamp: now,
		Amount:    amt,
	})
}
