package ledger

import (
	"time"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/investment"
)

const (
	// DemoWalletAddress is the simulated wallet the demo ledger acts as.
	DemoWalletAddress = "0xDemoWallet...8A2"

	DemoOpeningBalance = 5000
	LiveOpeningBalance = 1000
)

// NewDemoLedger builds the seeded demo ledger: a marketplace snapshot with
// invoices spread across every lifecycle stage, two prior stakes from the
// demo wallet, and an empty activity log.
func NewDemoLedger(now time.Time) *Ledger {
	mode := string(ModeDemo)
	return &Ledger{
		Balance: DemoOpeningBalance,
		Invoices: []invoice.Invoice{
			{
				InvoiceID:     "inv_demo_1",
				Mode:          mode,
				SMEAddress:    "0x71C...9A21",
				BuyerName:     "TechCorp International",
				InvoiceNumber: "INV-2024-001",
				Amount:        15000,
				Currency:      "USD",
				DueDate:       "2024-12-31",
				Description:   "Electronics components batch #452 for Q4 production run.",
				FundedAmount:  8500,
				Risk:          &invoice.RiskAnalysis{Score: 85, Grade: "A", Justification: "Strong balance sheet, consistent payment history from buyer.", RecommendedAPR: 8.5},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_2",
				Mode:          mode,
				SMEAddress:    "0x82D...4B12",
				BuyerName:     "Global Retail Solutions",
				InvoiceNumber: "INV-2024-002",
				Amount:        50000,
				Currency:      "EUR",
				DueDate:       "2025-01-15",
				Description:   "Textile shipment for Spring collection. Verified shipping documents.",
				FundedAmount:  12000,
				Risk:          &invoice.RiskAnalysis{Score: 72, Grade: "B", Justification: "Large volume transaction, buyer sector has moderate volatility.", RecommendedAPR: 11.2},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_3",
				Mode:          mode,
				SMEAddress:    "0x93E...5C34",
				BuyerName:     "StartUp Inc",
				InvoiceNumber: "INV-2024-003",
				Amount:        8000,
				Currency:      "USD",
				DueDate:       "2024-11-20",
				Description:   "Consulting services for software architecture.",
				FundedAmount:  0,
				Risk:          &invoice.RiskAnalysis{Score: 65, Grade: "C", Justification: "New entity, limited credit history available.", RecommendedAPR: 14.5},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_4",
				Mode:          mode,
				SMEAddress:    "0xA4F...6D45",
				BuyerName:     "Omega Construct",
				InvoiceNumber: "INV-2024-004",
				Amount:        125000,
				Currency:      "USD",
				DueDate:       "2025-03-01",
				Description:   "Structural steel beams for City Center project phase 2.",
				FundedAmount:  45000,
				Risk:          &invoice.RiskAnalysis{Score: 92, Grade: "A+", Justification: "Government contracted project, secured payment terms.", RecommendedAPR: 6.8},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_5",
				Mode:          mode,
				SMEAddress:    "0xB5G...7E56",
				BuyerName:     "Fresh Foods Market",
				InvoiceNumber: "INV-2024-005",
				Amount:        12000,
				Currency:      "EUR",
				DueDate:       "2024-11-30",
				Description:   "Organic produce wholesale delivery.",
				FundedAmount:  12000,
				Risk:          &invoice.RiskAnalysis{Score: 78, Grade: "B", Justification: "Perishable goods risk, but buyer has high credit rating.", RecommendedAPR: 9.5},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_6",
				Mode:          mode,
				SMEAddress:    "0xC6H...8F67",
				BuyerName:     "Crypto Mining Co",
				InvoiceNumber: "INV-2024-006",
				Amount:        45000,
				Currency:      "USD",
				DueDate:       "2024-12-15",
				Description:   "ASIC mining hardware supply.",
				FundedAmount:  1500,
				Risk:          &invoice.RiskAnalysis{Score: 45, Grade: "D", Justification: "High volatility sector, regulatory uncertainty.", RecommendedAPR: 22.0},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_7",
				Mode:          mode,
				SMEAddress:    "0xD7I...9G78",
				BuyerName:     "Apex Logistics",
				InvoiceNumber: "INV-2024-007",
				Amount:        28500,
				Currency:      "USD",
				DueDate:       "2025-02-10",
				Description:   "Fleet maintenance and parts supply.",
				FundedAmount:  28500,
				Repaid:        true,
				Risk:          &invoice.RiskAnalysis{Score: 88, Grade: "A", Justification: "Long-standing relationship, auto-pay enabled.", RecommendedAPR: 7.9},
				CreatedAt:     now,
			},
			{
				InvoiceID:     "inv_demo_8",
				Mode:          mode,
				SMEAddress:    "0xE8J...0H89",
				BuyerName:     "Novelty Gifts LLC",
				InvoiceNumber: "INV-2024-008",
				Amount:        3500,
				Currency:      "USD",
				DueDate:       "2024-11-15",
				Description:   "Holiday season inventory stock.",
				FundedAmount:  3000,
				Risk:          &invoice.RiskAnalysis{Score: 55, Grade: "C", Justification: "Seasonal business model, cash flow gaps common.", RecommendedAPR: 16.5},
				CreatedAt:     now,
			},
		},
		Investments: []investment.Investment{
			{
				InvestmentID: "tx_demo_1",
				Mode:         mode,
				InvoiceID:    "inv_demo_7",
				InvestorAddr: DemoWalletAddress,
				Amount:       5000,
				Timestamp:    now.Add(-30 * 24 * time.Hour),
			},
			{
				InvestmentID: "tx_demo_2",
				Mode:         mode,
				InvoiceID:    "inv_demo_1",
				InvestorAddr: DemoWalletAddress,
				Amount:       2500,
				Timestamp:    now.Add(-5 * 24 * time.Hour),
			},
		},
	}
}

// NewLiveLedger is the empty starting state for the persisted ledger.
func NewLiveLedger() *Ledger {
	return &Ledger{Balance: LiveOpeningBalance}
}
