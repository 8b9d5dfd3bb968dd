package forex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://api.frankfurter.app"

	// FallbackEURUSD is served whenever the live lookup fails.
	FallbackEURUSD = 1.08
)

// Frankfurter fetches the latest EUR/USD rate. Failures degrade to
// FallbackEURUSD at the call site; this client never blocks the funding flow.
type Frankfurter struct {
	baseURL string
	http    *http.Client
}

func NewFrankfurter(baseURL string) *Frankfurter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Frankfurter{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 8 * time.Second},
	}
}

func (f *Frankfurter) EURUSD(ctx context.Context) (float64, error) {
	url := f.baseURL + "/latest?from=EUR&to=USD"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "invoicex-backend/1.0")

	resp, err := f.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("frankfurter http %d", resp.StatusCode)
	}

	var raw struct {
		Rates struct {
			USD float64 `json:"USD"`
		} `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, err
	}
	if raw.Rates.USD <= 0 {
		return 0, fmt.Errorf("fx rate not found")
	}
	return raw.Rates.USD, nil
}
