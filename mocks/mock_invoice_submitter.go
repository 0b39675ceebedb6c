package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/invoice"
)

// MockInvoiceSubmitter is a mock implementation of port.InvoiceSubmitter.
type MockInvoiceSubmitter struct {
	mock.Mock
}

func (m *MockInvoiceSubmitter) Submit(ctx context.Context, payload *invoice.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
