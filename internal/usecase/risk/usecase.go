package risk

import (
	"context"
	"log"

	"invoicex-backend/internal/domain/invoice"
)

// InvoiceFacts describes a draft invoice to the estimator.
type InvoiceFacts struct {
	BuyerName   string
	Amount      float64
	Currency    string
	DueDate     string
	Description string
}

// Estimator is the external risk-scoring capability. Implementations may be
// slow or unavailable; the usecase absorbs both.
type Estimator interface {
	Analyze(ctx context.Context, facts InvoiceFacts) (*invoice.RiskAnalysis, error)
}

// Fallback returns the deterministic baseline used whenever the estimator
// fails. A failed assessment is never surfaced to the funding flow.
func Fallback() *invoice.RiskAnalysis {
	return &invoice.RiskAnalysis{
		Score:          70,
		Grade:          "B",
		Justification:  "AI analysis unavailable, using baseline conservative estimate.",
		RecommendedAPR: 10.5,
	}
}

type Usecase struct{ estimator Estimator }

func NewUsecase(e Estimator) *Usecase { return &Usecase{estimator: e} }

// Analyze grades a draft invoice, degrading to the fixed baseline on any
// estimator failure (missing key, transport error, unparseable response).
func (u *Usecase) Analyze(ctx context.Context, facts InvoiceFacts) *invoice.RiskAnalysis {
	if u.estimator == nil {
		return Fallback()
	}
	r, err := u.estimator.Analyze(ctx, facts)
	if err != nil {
		log.Printf("risk: analysis failed, using fallback: %v", err)
		return Fallback()
	}
	return r
}
