package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// ExpenseHandler handles purchase expense endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles GET /api/v1/expenses
// @Summary List historical expenses
// @Tags expenses
// @Produce json
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	records, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// Create handles POST /api/v1/expenses
// @Summary Record a purchase expense
// @Tags expenses
// @Accept json
// @Produce json
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var rec domain.ExpenseRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid expense record")
		return
	}

	if err := h.expenseService.Create(c.Request.Context(), &rec); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rec)
}
