package service

import (
	"context"
	"fmt"
	"strings"

	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/port"
)

// ExpenseService records and lists purchase expenses.
type ExpenseService interface {
	List(ctx context.Context) ([]domain.ExpenseRecord, error)
	Create(ctx context.Context, rec *domain.ExpenseRecord) error
}

type expenseService struct {
	expenseRepo port.ExpenseRepository
	fetchLimit  int
}

// NewExpenseService creates a new ExpenseService implementation.
func NewExpenseService(expenseRepo port.ExpenseRepository, fetchLimit int) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, fetchLimit: fetchLimit}
}

func (s *expenseService) List(ctx context.Context) ([]domain.ExpenseRecord, error) {
	return s.expenseRepo.List(ctx, s.fetchLimit)
}

func (s *expenseService) Create(ctx context.Context, rec *domain.ExpenseRecord) error {
	if strings.TrimSpace(rec.VendorName) == "" {
		return fmt.Errorf("%w: vendor name is required", domain.ErrValidation)
	}
	if rec.GSTIN != "" && !invoice.ValidGSTIN(rec.GSTIN) {
		return fmt.Errorf("%w: invalid vendor GSTIN format", domain.ErrValidation)
	}
	if rec.GSTAmount < 0 || rec.TaxableAmount < 0 || rec.TotalAmount < 0 {
		return fmt.Errorf("%w: amounts cannot be negative", domain.ErrValidation)
	}
	return s.expenseRepo.Create(ctx, rec)
}
