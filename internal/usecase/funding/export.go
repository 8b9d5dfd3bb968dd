package funding

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"invoicex-backend/internal/domain/ledger"
)

var ErrNothingToExport = errors.New("no investments to export")

const exportDateLayout = "2006-01-02"

// ExportCSV writes the investment ledger joined against invoice metadata.
// Column order and presence are fixed; investments referencing an unknown
// invoice are exported with N/A placeholders rather than dropped.
func (u *Usecase) ExportCSV(ctx context.Context, mode ledger.Mode, w io.Writer) error {
	l, err := u.store.Load(ctx, mode)
	if err != nil {
		return err
	}
	if len(l.Investments) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Investment ID", "Date", "Invoice Number", "Buyer", "Amount (USDC)", "Invoice Status"}); err != nil {
		return err
	}
	for _, tx := range l.Investments {
		number, buyer, status := "N/A", "N/A", "UNKNOWN"
		if inv, err := l.FindInvoice(tx.InvoiceID); err == nil {
			number, buyer, status = inv.InvoiceNumber, inv.BuyerName, string(inv.Status())
		}
		row := []string{
			tx.InvestmentID,
			tx.Timestamp.UTC().Format(exportDateLayout),
			number,
			buyer,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename is the download name, suffixed per mode.
func ExportFilename(mode ledger.Mode) string {
	return "invoice_portfolio_" + string(mode) + ".csv"
}
