package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"invoicex-backend/internal/usecase/funding"
)

type PortfolioHandler struct{ uc *funding.Usecase }

func NewPortfolioHandler(uc *funding.Usecase) *PortfolioHandler { return &PortfolioHandler{uc: uc} }

func (h *PortfolioHandler) ListInvestments(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	out, err := h.uc.ListInvestments(c.Request().Context(), mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PortfolioHandler) Balance(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	bal, err := h.uc.Balance(c.Request().Context(), mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"balance": bal})
}

func (h *PortfolioHandler) Activity(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	out, err := h.uc.Activity(c.Request().Context(), mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PortfolioHandler) Portfolio(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	dto, err := h.uc.Portfolio(c.Request().Context(), mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ExportCSV streams the flattened investment ledger as a download.
func (h *PortfolioHandler) ExportCSV(c echo.Context) error {
	mode, err := pathMode(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown mode"})
	}
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Request().Context(), mode, &buf); err != nil {
		if errors.Is(err, funding.ErrNothingToExport) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return domainError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+funding.ExportFilename(mode)+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
