package funding

import (
	"time"

	"invoicex-backend/internal/domain/invoice"
)

type MintInput struct {
	SMEAddress    string
	BuyerName     string
	InvoiceNumber string
	Amount        float64
	Currency      string
	DueDate       string // YYYY-MM-DD
	Description   string
	Risk          *invoice.RiskAnalysis
}

type InvestInput struct {
	InvoiceID    string
	InvestorAddr string
	Amount       float64
}

type RepayInput struct {
	InvoiceID string
	PayerAddr string
}

type InvoiceDTO struct {
	ID            string                `json:"id"`
	SMEAddress    string                `json:"smeAddress"`
	BuyerName     string                `json:"buyerName"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Amount        float64               `json:"amount"`
	Currency      string                `json:"currency"`
	DueDate       string                `json:"dueDate"`
	Description   string                `json:"description"`
	Status        string                `json:"status"`
	FundedAmount  float64               `json:"fundedAmount"`
	Risk          *invoice.RiskAnalysis `json:"risk,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

type InvestmentDTO struct {
	ID              string    `json:"id"`
	InvoiceID       string    `json:"invoiceId"`
	InvestorAddress string    `json:"investorAddress"`
	Amount          float64   `json:"amount"`
	Timestamp       time.Time `json:"timestamp"`
}

type ActivityDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Amount    *float64  `json:"amount,omitempty"`
}

// PortfolioDTO is the dashboard roll-up for one mode.
type PortfolioDTO struct {
	Balance        float64 `json:"balance"`
	TotalStaked    float64 `json:"totalStaked"`
	FundingCount   int     `json:"fundingCount"`
	FundedCount    int     `json:"fundedCount"`
	RepaidCount    int     `json:"repaidCount"`
	InvestmentRows int     `json:"investmentRows"`
}

func toInvoiceDTO(inv *invoice.Invoice) *InvoiceDTO {
	dto := &InvoiceDTO{
		ID:            inv.InvoiceID,
		SMEAddress:    inv.SMEAddress,
		BuyerName:     inv.BuyerName,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		DueDate:       inv.DueDate,
		Description:   inv.Description,
		Status:        string(inv.Status()),
		FundedAmount:  inv.FundedAmount,
		CreatedAt:     inv.CreatedAt,
	}
	if inv.Risk != nil {
		r := *inv.Risk
		dto.Risk = &r
	}
	return dto
}
