package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockAnalyticsService is a mock implementation of service.AnalyticsService.
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Report(ctx context.Context) (*domain.GSTReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTReport), args.Error(1)
}

func (m *MockAnalyticsService) WriteCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockAnalyticsService) WriteXLSX(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
