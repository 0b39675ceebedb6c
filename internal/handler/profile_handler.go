package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// ProfileHandler handles supplier profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/v1/profile
// @Summary Get the supplier profile
// @Tags profile
// @Produce json
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// Update handles PUT /api/v1/profile
// @Summary Update the supplier profile
// @Tags profile
// @Accept json
// @Produce json
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var profile domain.SupplierProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body is not a valid supplier profile")
		return
	}

	if err := h.profileService.Update(c.Request.Context(), &profile); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}
