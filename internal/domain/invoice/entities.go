package invoice

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusFunding Status = "FUNDING"
	StatusFunded  Status = "FUNDED"
	StatusRepaid  Status = "REPAID"
)

// StatusOf derives the lifecycle status from the funding figures and the
// repayment flag. Status is never stored, so it cannot drift from the amounts.
func StatusOf(fundedAmount, amount float64, repaid bool) Status {
	switch {
	case repaid:
		return StatusRepaid
	case fundedAmount >= amount:
		return StatusFunded
	default:
		return StatusFunding
	}
}

// RiskAnalysis is attached at mint time; analysis happens before the mint is
// offered, so an invoice normally carries one from the start.
type RiskAnalysis struct {
	Score          float64 `gorm:"column:score;type:decimal(5,2)" json:"score"`
	Grade          string  `gorm:"column:grade;size:2" json:"grade"`
	Justification  string  `gorm:"column:justification;type:text" json:"justification"`
	RecommendedAPR float64 `gorm:"column:apr;type:decimal(6,2)" json:"recommendedApr"`
}

type Invoice struct {
	// Internal numeric PK (live store); the public identifier is InvoiceID.
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	InvoiceID     string         `gorm:"size:32;column:invoice_id;uniqueIndex:ux_invoices_invoice_id_mode" json:"id"`
	Mode          string         `gorm:"size:8;column:mode;uniqueIndex:ux_invoices_invoice_id_mode;index:idx_invoices_mode" json:"-"`
	SMEAddress    string         `gorm:"size:64;column:sme_address" json:"smeAddress"`
	BuyerName     string         `gorm:"size:128;column:buyer_name" json:"buyerName"`
	InvoiceNumber string         `gorm:"size:64;column:invoice_number" json:"invoiceNumber"`
	Amount        float64        `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	Currency      string         `gorm:"size:8;column:currency" json:"currency"`
	DueDate       string         `gorm:"size:10;column:due_date" json:"dueDate"` // YYYY-MM-DD
	Description   string         `gorm:"type:text;column:description" json:"description"`
	FundedAmount  float64        `gorm:"type:decimal(18,2);column:funded_amount" json:"fundedAmount"`
	Repaid        bool           `gorm:"column:repaid" json:"-"`
	Risk          *RiskAnalysis  `gorm:"embedded;embeddedPrefix:risk_" json:"risk,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }

// Status of the invoice right now.
func (i *Invoice) Status() Status { return StatusOf(i.FundedAmount, i.Amount, i.Repaid) }

// Remaining capital the invoice can still absorb.
func (i *Invoice) Remaining() float64 { return i.Amount - i.FundedAmount }
