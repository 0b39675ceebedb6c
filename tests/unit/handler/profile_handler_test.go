package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/mocks"
)

func newProfileHandler() (*handler.ProfileHandler, *mocks.MockProfileService) {
	mockSvc := new(mocks.MockProfileService)
	h := handler.NewProfileHandler(mockSvc)
	return h, mockSvc
}

func TestProfileHandler_Get_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	profile := &domain.SupplierProfile{LegalName: "Acme Traders Pvt Ltd", GSTIN: "29AAAAA0000A1Z5"}
	mockSvc.On("Get", mock.Anything).Return(profile, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/profile", nil)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme Traders Pvt Ltd")
	mockSvc.AssertExpectations(t)
}

func TestProfileHandler_Update_Success(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Update", mock.Anything, mock.AnythingOfType("*domain.SupplierProfile")).Return(nil)

	body, _ := json.Marshal(domain.SupplierProfile{
		LegalName: "Acme Traders Pvt Ltd",
		GSTIN:     "29AAAAA0000A1Z5",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestProfileHandler_Update_ValidationError(t *testing.T) {
	h, mockSvc := newProfileHandler()

	mockSvc.On("Update", mock.Anything, mock.Anything).Return(domain.ErrValidation)

	body, _ := json.Marshal(domain.SupplierProfile{GSTIN: "bad"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Update(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
