package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/port"
)

// InvoiceService composes, previews, and submits invoices.
type InvoiceService interface {
	// Preview validates the form and returns the composed payload
	// without transmitting it.
	Preview(ctx context.Context, form *invoice.Form) (*invoice.Payload, error)
	// Submit validates, composes, transmits the payload to the
	// automation webhook, and records the sale.
	Submit(ctx context.Context, form *invoice.Form) (*invoice.Payload, error)
	List(ctx context.Context) ([]domain.InvoiceRecord, error)
	// UpdateStatus marks a recorded invoice as sent or paid.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	submitter   port.InvoiceSubmitter
	fetchLimit  int
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoiceRepo port.InvoiceRepository, submitter port.InvoiceSubmitter, fetchLimit int) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, submitter: submitter, fetchLimit: fetchLimit}
}

func (s *invoiceService) Preview(_ context.Context, form *invoice.Form) (*invoice.Payload, error) {
	if err := invoice.Validate(form); err != nil {
		return nil, err
	}
	return invoice.Compose(form, time.Now()), nil
}

func (s *invoiceService) Submit(ctx context.Context, form *invoice.Form) (*invoice.Payload, error) {
	if err := invoice.Validate(form); err != nil {
		return nil, err
	}
	payload := invoice.Compose(form, time.Now())

	if err := s.submitter.Submit(ctx, payload); err != nil {
		return nil, fmt.Errorf("invoiceService.Submit: %w", err)
	}

	rec := &domain.InvoiceRecord{
		InvoiceNumber: newInvoiceNumber(time.Now()),
		ClientName:    form.Buyer.Name,
		GSTIN:         form.Buyer.GSTIN,
		Status:        string(domain.InvoiceStatusGenerated),
		Amount:        payload.Financials.GrandTotal,
		InvoiceDate:   form.Meta.InvoiceDate,
		GSTTotal:      payload.Financials.CGSTAmount + payload.Financials.SGSTAmount + payload.Financials.IGSTAmount,
	}
	if err := s.invoiceRepo.Create(ctx, rec); err != nil {
		// The webhook already accepted the payload; failing the whole
		// submission here would prompt a duplicate resubmit.
		log.Printf("invoiceService.Submit: record not persisted: %v", err)
	}

	return payload, nil
}

func (s *invoiceService) List(ctx context.Context) ([]domain.InvoiceRecord, error) {
	return s.invoiceRepo.List(ctx, s.fetchLimit)
}

func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown invoice status %q", domain.ErrValidation, status)
	}
	return s.invoiceRepo.UpdateStatus(ctx, id, status)
}

// newInvoiceNumber derives a human-readable invoice number from the
// submission instant.
func newInvoiceNumber(now time.Time) string {
	return "INV-" + now.UTC().Format("20060102-150405")
}
