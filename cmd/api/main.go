package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"invoicex-backend/internal/adapter/forex"
	httpadp "invoicex-backend/internal/adapter/http"
	"invoicex-backend/internal/adapter/middleware"
	"invoicex-backend/internal/adapter/repository"
	"invoicex-backend/internal/adapter/repository/memory"
	"invoicex-backend/internal/adapter/repository/mysql"
	"invoicex-backend/internal/adapter/riskapi"
	"invoicex-backend/internal/config"
	"invoicex-backend/internal/domain/ledger"
	"invoicex-backend/internal/infrastructure/cache"
	"invoicex-backend/internal/infrastructure/db"
	"invoicex-backend/internal/usecase/funding"
	"invoicex-backend/internal/usecase/risk"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Demo ledger always lives in memory, seeded with the marketplace demo set.
	mem := memory.NewStore()
	mem.Seed(ledger.ModeDemo, ledger.NewDemoLedger(time.Now().UTC()))

	router := repository.NewRouter().Mount(ledger.ModeDemo, mem)
	if cfg.MySQLEnabled() {
		gdb, err := db.OpenGorm(cfg.MySQLDSN())
		if err != nil {
			log.Fatal(err)
		}
		store := mysql.NewStore(gdb)
		if err := store.Migrate(ledger.ModeLive, ledger.LiveOpeningBalance); err != nil {
			log.Fatal(err)
		}
		router.Mount(ledger.ModeLive, store)
	} else {
		log.Println("no MySQL configured; live ledger kept in memory")
		router.Mount(ledger.ModeLive, mem)
	}

	fundingUC := funding.NewUsecase(router)
	riskUC := risk.NewUsecase(riskapi.NewClient(cfg.RiskAPIKey, cfg.RiskBaseURL, cfg.RiskModel))
	fx := forex.NewFrankfurter(cfg.ForexBaseURL)

	h := httpadp.NewHandler()
	invoices := httpadp.NewInvoiceHandler(fundingUC, riskUC)
	fundingH := httpadp.NewFundingHandler(fundingUC)
	portfolio := httpadp.NewPortfolioHandler(fundingUC)
	rates := httpadp.NewRatesHandler(fx)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	} else {
		log.Println("no Redis configured; idempotency middleware disabled")
	}

	// routes
	e.GET("/health", h.Health)
	e.GET("/rates/eurusd", rates.EURUSD)
	e.POST("/risk/analyze", invoices.AnalyzeRisk)

	e.GET("/:mode/invoices", invoices.ListInvoices)
	e.POST("/:mode/invoices", invoices.MintInvoice)
	e.GET("/:mode/invoices/:invoice_id", invoices.GetInvoice)
	e.POST("/:mode/invoices/:invoice_id/investments", fundingH.Invest)
	e.POST("/:mode/invoices/:invoice_id/repayment", fundingH.Repay)

	e.GET("/:mode/investments", portfolio.ListInvestments)
	e.GET("/:mode/balance", portfolio.Balance)
	e.GET("/:mode/activity", portfolio.Activity)
	e.GET("/:mode/portfolio", portfolio.Portfolio)
	e.GET("/:mode/portfolio/export", portfolio.ExportCSV)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
