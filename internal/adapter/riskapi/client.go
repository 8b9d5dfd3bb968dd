package riskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"invoicex-backend/internal/domain/invoice"
	"invoicex-backend/internal/usecase/risk"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "google/gemini-2.5-flash"
)

var ErrNoAPIKey = errors.New("riskapi: no api key configured")

// Client grades invoices via a chat-completions API, asking for a strict JSON
// object. Any failure is reported to the caller, which falls back to the
// deterministic baseline estimate.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Analyze(ctx context.Context, facts risk.InvoiceFacts) (*invoice.RiskAnalysis, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	prompt := fmt.Sprintf(`Act as a professional financial risk analyst for an invoice factoring protocol.
Analyze the following invoice data to generate a risk assessment.

Invoice Details:
- Buyer: %s
- Amount: %.2f %s
- Due Date: %s
- Description: %s

Respond with a JSON object: {"score": <0-100, 100 is safest>, "grade": <"A+"|"A"|"B"|"C"|"D"|"F">, "justification": <one sentence>, "recommendedApr": <percent>}.
Be realistic but slightly conservative.`,
		facts.BuyerName, facts.Amount, facts.Currency, facts.DueDate, facts.Description)

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("risk request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("risk api http %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, errors.New("empty completion")
	}
	return parseAnalysis(cr.Choices[0].Message.Content)
}

func parseAnalysis(content string) (*invoice.RiskAnalysis, error) {
	// Some models wrap JSON in a code fence despite the response_format hint.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out invoice.RiskAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	if out.Score < 0 || out.Score > 100 || out.Grade == "" {
		return nil, errors.New("analysis out of range")
	}
	return &out, nil
}
