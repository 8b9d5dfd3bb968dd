package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/usecase/funding"
	"invoicex-backend/internal/usecase/risk"
)

type InvoiceHandler struct {
	funding *funding.Usecase
	risk    *risk.Usecase
}

func NewInvoiceHandler(f *funding.Usecase, r *risk.Usecase) *InvoiceHandler {
	return &InvoiceHandler{funding: f, risk: r}
}

type riskReq struct {
	Score          float64 `json:"score"           validate:"gte=0,lte=100"`
	Grade          string  `json:"grade"           validate:"required,grade"`
	Justification  string  `json:"justification"`
	RecommendedAPR float64 `json:"recommendedApr"  validate:"gte=0"`
}

type mintInvoiceReq struct {
	SMEAddress    string   `json:"smeAddress"    validate:"required,walletaddr"`
	BuyerName     string   `json:"buyerName"     validate:"required"`
	InvoiceNumber string   `json:"invoiceNumber" validate:"required"`
	Amount        float64  `json:"amount"        validate:"required,gt=0,dec2"`
	Currency      string   `json:"currency"      validate:"required,ccy"`
	DueDate       string   `json:"dueDate"       validate:"required,datetime=2006-01-02"`
	Description   string   `json:"description"   validate:"required"`
	Risk          *riskReq `json:"risk,omitempty"`
}

type analyzeReq struct {
	BuyerName   string  `json:"buyerName"   validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,ccy"`
	DueDate     string  `json:"dueDate"     validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"required"`
}

// MintInvoice tokenizes a validated receivable. When the draft carries no
// risk record the estimator is consulted first; its failure degrades to the
// baseline rather than blocking the mint.
func (h *InvoiceHandler) MintInvoice(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	var req mintInvoiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var r *invoice.RiskAnalysis
	if req.Risk != nil {
		r = &invoice.RiskAnalysis{
			Score:          req.Risk.Score,
			Grade:          req.Risk.Grade,
			Justification:  req.Risk.Justification,
			RecommendedAPR: req.Risk.RecommendedAPR,
		}
	} else {
		r = h.risk.Analyze(c.Request().Context(), risk.InvoiceFacts{
			BuyerName:   req.BuyerName,
			Amount:      req.Amount,
			Currency:    req.Currency,
			DueDate:     req.DueDate,
			Description: req.Description,
		})
	}

	dto, err := h.funding.Mint(c.Request().Context(), mode, funding.MintInput{
		SMEAddress:    req.SMEAddress,
		BuyerName:     req.BuyerName,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      req.Currency,
		DueDate:       req.DueDate,
		Description:   req.Description,
		Risk:          r,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	out, err := h.funding.ListInvoices(c.Request().Context(), mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	dto, err := h.funding.GetInvoice(c.Request().Context(), mode, c.Param("invoice_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// AnalyzeRisk grades a draft invoice before the mint is offered.
func (h *InvoiceHandler) AnalyzeRisk(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	r := h.risk.Analyze(c.Request().Context(), risk.InvoiceFacts{
		BuyerName:   req.BuyerName,
		Amount:      req.Amount,
		Currency:    req.Currency,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	return c.JSON(http.StatusOK, r)
}
