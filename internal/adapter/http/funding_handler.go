package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"invoicex-backend/internal/usecase/funding"
)

type FundingHandler struct{ uc *funding.Usecase }

func NewFundingHandler(uc *funding.Usecase) *FundingHandler { return &FundingHandler{uc: uc} }

type investReq struct {
	InvestorAddress string  `json:"investorAddress" validate:"required,walletaddr"`
	Amount          float64 `json:"amount"          validate:"required,gt=0,dec2"`
}

type repayReq struct {
	PayerAddress string `json:"payerAddress" validate:"required,walletaddr"`
}

// Invest stakes capital against an invoice. Note that wallet sufficiency is
// not checked on this path; clients are expected to warn, the ledger accepts.
func (h *FundingHandler) Invest(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Invest(c.Request().Context(), mode, funding.InvestInput{
		InvoiceID:    c.Param("invoice_id"),
		InvestorAddr: req.InvestorAddress,
		Amount:       req.Amount,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Repay settles an invoice at face value out of the mode's wallet.
func (h *FundingHandler) Repay(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	var req repayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Repay(c.Request().Context(), mode, funding.RepayInput{
		InvoiceID: c.Param("invoice_id"),
		PayerAddr: req.PayerAddress,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
