package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const listInvoicesQuery = `SELECT id, invoice_number, client_name, gstin, status,
	amount, invoice_date, pdf_link, gst_total, created_at
FROM invoices
ORDER BY created_at DESC
LIMIT $1`

func (r *invoiceRepo) List(ctx context.Context, limit int) ([]domain.InvoiceRecord, error) {
	records := []domain.InvoiceRecord{}
	if err := r.db.SelectContext(ctx, &records, listInvoicesQuery, limit); err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return records, nil
}

const insertInvoiceQuery = `INSERT INTO invoices
	(id, invoice_number, client_name, gstin, status, amount, invoice_date, pdf_link, gst_total, created_at)
VALUES (:id, :invoice_number, :client_name, :gstin, :status, :amount, :invoice_date, :pdf_link, :gst_total, :created_at)`

const updateInvoiceStatusQuery = `UPDATE invoices SET status = $1 WHERE id = $2`

func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx, updateInvoiceStatusQuery, string(status), id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Create(ctx context.Context, rec *domain.InvoiceRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.NamedExecContext(ctx, insertInvoiceQuery, rec); err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}
