package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockProfileRepo is a mock implementation of port.ProfileRepository.
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.SupplierProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierProfile), args.Error(1)
}

func (m *MockProfileRepo) Save(ctx context.Context, profile *domain.SupplierProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
