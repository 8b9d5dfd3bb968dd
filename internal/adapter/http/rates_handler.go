package http

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"invoicex-backend/internal/adapter/forex"
)

// RateSource is the EUR/USD lookup capability.
type RateSource interface {
	EURUSD(ctx context.Context) (float64, error)
}

type RatesHandler struct{ fx RateSource }

func NewRatesHandler(fx RateSource) *RatesHandler { return &RatesHandler{fx: fx} }

// EURUSD returns the live rate, or the fallback constant when the lookup
// fails. The fallback is never a hard failure.
func (h *RatesHandler) EURUSD(c echo.Context) error {
	rate, err := h.fx.EURUSD(c.Request().Context())
	fallback := false
	if err != nil {
		log.Printf("forex: lookup failed, serving fallback: %v", err)
		rate = forex.FallbackEURUSD
		fallback = true
	}
	return c.JSON(http.StatusOK, map[string]any{
		"pair":     "EURUSD",
		"rate":     rate,
		"fallback": fallback,
	})
}
