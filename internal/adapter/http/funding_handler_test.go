package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"invoicex-backend/internal/domain/ledger"
	"invoicex-backend/internal/usecase/funding"
)

const investorAddr = "0x1234567890abcdef1234567890abcdef12345678"

func TestInvest_CreatedAndWalletDebited(t *testing.T) {
	e, uc, store := newTestEnv(t)
	h := NewFundingHandler(uc)

	// inv_demo_3 starts unfunded at 8000 face.
	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_3/investments",
		`{"investorAddress":"`+investorAddr+`","amount":2500}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_3")

	if err := h.Invest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var dto funding.InvestmentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.InvoiceID != "inv_demo_3" || dto.Amount != 2500 {
		t.Fatalf("unexpected investment: %+v", dto)
	}

	l, err := store.Load(context.Background(), ledger.ModeDemo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Balance != ledger.DemoOpeningBalance-2500 {
		t.Fatalf("wallet not debited: balance=%v", l.Balance)
	}
}

func TestInvest_OverfundingIsConflict(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	// inv_demo_1 has 6500 remaining; asking for more must be rejected
	// outright, never clamped.
	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_1/investments",
		`{"investorAddress":"`+investorAddr+`","amount":6500.01}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_1")

	if err := h.Invest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInvest_RepaidInvoiceIsConflict(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_7/investments",
		`{"investorAddress":"`+investorAddr+`","amount":100}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_7")

	if err := h.Invest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInvest_UnknownInvoiceIs404(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_missing/investments",
		`{"investorAddress":"`+investorAddr+`","amount":100}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_missing")

	if err := h.Invest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestInvest_BadWalletIs422(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_3/investments",
		`{"investorAddress":"not-a-wallet","amount":100}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_3")

	if err := h.Invest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRepay_SettlesAtFaceValue(t *testing.T) {
	e, uc, store := newTestEnv(t)
	h := NewFundingHandler(uc)

	// inv_demo_8 is a 3500 face invoice, still funding; the 5000 opening
	// balance covers it, and settlement before full funding is allowed.
	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_8/repayment",
		`{"payerAddress":"`+investorAddr+`"}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_8")

	if err := h.Repay(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var dto funding.InvoiceDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != "REPAID" {
		t.Fatalf("expected REPAID, got %s", dto.Status)
	}

	l, err := store.Load(context.Background(), ledger.ModeDemo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Balance != ledger.DemoOpeningBalance-3500 {
		t.Fatalf("face value not debited: balance=%v", l.Balance)
	}
}

func TestRepay_InsufficientBalanceIsConflict(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	// inv_demo_2 carries a 50000 face, far above the 5000 opening balance.
	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_2/repayment",
		`{"payerAddress":"`+investorAddr+`"}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_2")

	if err := h.Repay(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRepay_TwiceIsConflict(t *testing.T) {
	e, uc, _ := newTestEnv(t)
	h := NewFundingHandler(uc)

	c, rec := jsonCtx(e, http.MethodPost, "/demo/invoices/inv_demo_7/repayment",
		`{"payerAddress":"`+investorAddr+`"}`)
	c.SetParamNames("mode", "invoice_id")
	c.SetParamValues("demo", "inv_demo_7")

	if err := h.Repay(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}
