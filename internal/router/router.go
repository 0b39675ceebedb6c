package router

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/config"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	expenseH *handler.ExpenseHandler,
	analyticsH *handler.AnalyticsHandler,
	profileH *handler.ProfileHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Invoice composition and history
	invoices := v1.Group("/invoices")
	invoices.POST("/preview", invoiceH.Preview)
	invoices.POST("", invoiceH.Submit)
	invoices.GET("", invoiceH.List)
	invoices.PATCH("/:id/status", invoiceH.UpdateStatus)

	// Purchase expenses
	expenses := v1.Group("/expenses")
	expenses.GET("", expenseH.List)
	expenses.POST("", expenseH.Create)

	// GST analytics and exports
	analytics := v1.Group("/analytics")
	analytics.GET("", analyticsH.Report)
	analytics.GET("/export/csv", analyticsH.ExportCSV)
	analytics.GET("/export/xlsx", analyticsH.ExportXLSX)

	// Supplier profile
	v1.GET("/profile", profileH.Get)
	v1.PUT("/profile", profileH.Update)

	return r
}
