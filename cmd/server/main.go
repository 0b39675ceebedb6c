package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"gstbill/internal/config"
	"gstbill/internal/handler"
	"gstbill/internal/repository/postgres"
	"gstbill/internal/router"
	"gstbill/internal/service"
	"gstbill/internal/webhook"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env if present; environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)
	profileRepo := postgres.NewProfileRepo(db)

	// Initialize webhook submitter
	submitter := webhook.NewClient(&cfg.Webhook)

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, submitter, cfg.Records.FetchLimit)
	expenseSvc := service.NewExpenseService(expenseRepo, cfg.Records.FetchLimit)
	analyticsSvc := service.NewAnalyticsService(invoiceRepo, expenseRepo, cfg.Records.FetchLimit)
	profileSvc := service.NewProfileService(profileRepo)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	expenseH := handler.NewExpenseHandler(expenseSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, invoiceH, expenseH, analyticsH, profileH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
