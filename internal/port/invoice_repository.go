package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// InvoiceRepository provides access to historical invoice records.
type InvoiceRepository interface {
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.InvoiceRecord, error)
	Create(ctx context.Context, rec *domain.InvoiceRecord) error
	// UpdateStatus moves a record through its lifecycle; it returns
	// domain.ErrNotFound when no record has the given id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
}
