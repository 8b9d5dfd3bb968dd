package activity

import (
	"time"
)

type Type string

const (
	TypeMint   Type = "MINT"
	TypeInvest Type = "INVEST"
	TypeRepay  Type = "REPAY"
)

// Entry is one line of the append-only protocol activity log. Entries are
// served newest-first; creation order is the only ordering guarantee.
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	EntryID   string    `gorm:"size:32;column:entry_id;uniqueIndex:ux_activity_entry_id_mode" json:"id"`
	Mode      string    `gorm:"size:8;column:mode;uniqueIndex:ux_activity_entry_id_mode;index:idx_activity_mode" json:"-"`
	Type      Type      `gorm:"size:8;column:type" json:"type"`
	Message   string    `gorm:"size:255;column:message" json:"message"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	Amount    *float64  `gorm:"type:decimal(18,2);column:amount" json:"amount,omitempty"`
}

func (Entry) TableName() string { return "activity_log" }
