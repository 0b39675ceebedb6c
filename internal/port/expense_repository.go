package port

import (
	"context"

	"gstbill/internal/domain"
)

// ExpenseRepository provides access to purchase expense records.
type ExpenseRepository interface {
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.ExpenseRecord, error)
	Create(ctx context.Context, rec *domain.ExpenseRecord) error
}
