package investment

import (
	"time"
)

// Investment is a single investor's stake against one invoice. Immutable once
// created: no edits or deletions are modeled anywhere in the system.
type Investment struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	InvestmentID string    `gorm:"size:32;column:investment_id;uniqueIndex:ux_investments_investment_id_mode" json:"id"`
	Mode         string    `gorm:"size:8;column:mode;uniqueIndex:ux_investments_investment_id_mode;index:idx_investments_mode" json:"-"`
	InvoiceID    string    `gorm:"size:32;column:invoice_id;index" json:"invoiceId"`
	InvestorAddr string    `gorm:"size:64;column:investor_address" json:"investorAddress"`
	Amount       float64   `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	Timestamp    time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Investment) TableName() string { return "investments" }
