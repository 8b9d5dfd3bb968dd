package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/domain/ledger"
	"invoicex-backend/internal/usecase/funding"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// pathMode validates the :mode path param.
func pathMode(c echo.Context) (ledger.Mode, error) {
	return ledger.ParseMode(c.Param("mode"))
}

// domainStatus maps engine errors to HTTP codes: unknown ids → 404, lifecycle
// and balance guards → 409, malformed input → 400.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, invoice.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, invoice.ErrAlreadyRepaid),
		errors.Is(err, invoice.ErrOverfunded),
		errors.Is(err, invoice.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, invoice.ErrInvalidAmount),
		errors.Is(err, funding.ErrInvalidInput),
		errors.Is(err, ledger.ErrUnknownMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func domainError(c echo.Context, err error) error {
	code := domainStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
