package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/csvexport"
	"gstbill/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AnalyticsHandler handles GST dashboard and export endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Report handles GET /api/v1/analytics
// @Summary Get the GST dashboard report
// @Description Aggregate totals, monthly liability-vs-credit series, and per-party rollups derived from stored records.
// @Tags analytics
// @Produce json
// @Router /analytics [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	report, err := h.analyticsService.Report(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/analytics/export/csv
// @Summary Download the monthly GST series as CSV
// @Tags analytics
// @Produce text/csv
// @Router /analytics/export/csv [get]
func (h *AnalyticsHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.analyticsService.WriteCSV(c.Request.Context(), &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("gst_report")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles GET /api/v1/analytics/export/xlsx
// @Summary Download the GST report workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /analytics/export/xlsx [get]
func (h *AnalyticsHandler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.analyticsService.WriteXLSX(c.Request.Context(), &buf); err != nil {
		HandleError(c, err)
		return
	}

	name := csvexport.SanitizeFilename("gst_report")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
