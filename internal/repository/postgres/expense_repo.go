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

type expenseRepo struct {
	db *sqlx.DB
}

// NewExpenseRepo creates a new PostgreSQL-backed ExpenseRepository.
func NewExpenseRepo(db *sqlx.DB) port.ExpenseRepository {
	return &expenseRepo{db: db}
}

const listExpensesQuery = `SELECT id, date, invoice_number, vendor_name, gstin,
	taxable_amount, gst_amount, total_amount, category, created_at
FROM expenses
ORDER BY created_at DESC
LIMIT $1`

func (r *expenseRepo) List(ctx context.Context, limit int) ([]domain.ExpenseRecord, error) {
	records := []domain.ExpenseRecord{}
	if err := r.db.SelectContext(ctx, &records, listExpensesQuery, limit); err != nil {
		return nil, fmt.Errorf("expenseRepo.List: %w", err)
	}
	return records, nil
}

const insertExpenseQuery = `INSERT INTO expenses
	(id, date, invoice_number, vendor_name, gstin, taxable_amount, gst_amount, total_amount, category, created_at)
VALUES (:id, :date, :invoice_number, :vendor_name, :gstin, :taxable_amount, :gst_amount, :total_amount, :category, :created_at)`

func (r *expenseRepo) Create(ctx context.Context, rec *domain.ExpenseRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.NamedExecContext(ctx, insertExpenseQuery, rec); err != nil {
		return fmt.Errorf("expenseRepo.Create: %w", err)
	}
	return nil
}
