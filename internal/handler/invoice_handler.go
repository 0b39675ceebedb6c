package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/service"
)

// InvoiceHandler handles invoice preview, submission, and history endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Preview a composed invoice payload
// @Description Validates the form and returns the payload that a submission would transmit, without sending it.
// @Tags invoices
// @Accept json
// @Produce json
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var form invoice.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid invoice form")
		return
	}

	payload, err := h.invoiceService.Preview(c.Request.Context(), &form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payload)
}

// Submit handles POST /api/v1/invoices
// @Summary Submit an invoice for PDF generation
// @Description Validates and composes the invoice, transmits it to the automation webhook, and records the sale.
// @Tags invoices
// @Accept json
// @Produce json
// @Router /invoices [post]
func (h *InvoiceHandler) Submit(c *gin.Context) {
	var form invoice.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid invoice form")
		return
	}

	payload, err := h.invoiceService.Submit(c.Request.Context(), &form)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, payload)
}

type updateStatusRequest struct {
	Status domain.InvoiceStatus `json:"status"`
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
// @Summary Update an invoice's lifecycle status
// @Description Marks a recorded invoice as Generated, Sent, or Paid.
// @Tags invoices
// @Accept json
// @Produce json
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invoice id is not a valid UUID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid status update")
		return
	}

	if err := h.invoiceService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"id": id, "status": req.Status})
}

// List handles GET /api/v1/invoices
// @Summary List historical invoices
// @Tags invoices
// @Produce json
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	records, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}
