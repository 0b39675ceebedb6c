package handler_test

import (
	"context"
	"errors"
	"io"
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

func newAnalyticsHandler() (*handler.AnalyticsHandler, *mocks.MockAnalyticsService) {
	mockSvc := new(mocks.MockAnalyticsService)
	h := handler.NewAnalyticsHandler(mockSvc)
	return h, mockSvc
}

func TestAnalyticsHandler_Report_Success(t *testing.T) {
	h, mockSvc := newAnalyticsHandler()

	report := &domain.GSTReport{
		Totals:  domain.Totals{Output: 270, Input: 90, Net: 180, Payable: 180},
		Monthly: []domain.MonthlyPoint{{Month: "2025-04", Liability: 180, Credit: 90}},
	}
	mockSvc.On("Report", mock.Anything).Return(report, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analytics", nil)

	h.Report(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2025-04"`)
	mockSvc.AssertExpectations(t)
}

func TestAnalyticsHandler_Report_Failure(t *testing.T) {
	h, mockSvc := newAnalyticsHandler()

	mockSvc.On("Report", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analytics", nil)

	h.Report(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalyticsHandler_ExportCSV_Headers(t *testing.T) {
	h, mockSvc := newAnalyticsHandler()

	mockSvc.On("WriteCSV", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		w := args.Get(1).(io.Writer)
		_, _ = w.Write([]byte("Month,Liability (Output),Credit (Input)\n"))
	}).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analytics/export/csv", nil)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "Liability (Output)")
}

func TestAnalyticsHandler_ExportXLSX_Headers(t *testing.T) {
	h, mockSvc := newAnalyticsHandler()

	mockSvc.On("WriteXLSX", mock.Anything, mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analytics/export/xlsx", nil)

	h.ExportXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}

func TestAnalyticsHandler_ExportCSV_Failure(t *testing.T) {
	h, mockSvc := newAnalyticsHandler()

	mockSvc.On("WriteCSV", mock.Anything, mock.Anything).Return(context.DeadlineExceeded)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/analytics/export/csv", nil)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
