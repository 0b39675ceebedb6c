package service

import (
	"context"
	"fmt"
	"io"

	"gstbill/internal/analytics"
	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/xlsxexport"
)

// AnalyticsService derives GST reporting from the stored records.
type AnalyticsService interface {
	Report(ctx context.Context) (*domain.GSTReport, error)
	WriteCSV(ctx context.Context, w io.Writer) error
	WriteXLSX(ctx context.Context, w io.Writer) error
}

type analyticsService struct {
	invoiceRepo port.InvoiceRepository
	expenseRepo port.ExpenseRepository
	fetchLimit  int
}

// NewAnalyticsService creates a new AnalyticsService implementation.
func NewAnalyticsService(invoiceRepo port.InvoiceRepository, expenseRepo port.ExpenseRepository, fetchLimit int) AnalyticsService {
	return &analyticsService{invoiceRepo: invoiceRepo, expenseRepo: expenseRepo, fetchLimit: fetchLimit}
}

func (s *analyticsService) Report(ctx context.Context) (*domain.GSTReport, error) {
	invoices, err := s.invoiceRepo.List(ctx, s.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.Report invoices: %w", err)
	}
	expenses, err := s.expenseRepo.List(ctx, s.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("analyticsService.Report expenses: %w", err)
	}
	return analytics.Aggregate(invoices, expenses), nil
}

// WriteCSV streams the monthly liability-vs-credit series as CSV,
// prefixed with a UTF-8 BOM for Excel.
func (s *analyticsService) WriteCSV(ctx context.Context, w io.Writer) error {
	report, err := s.Report(ctx)
	if err != nil {
		return err
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("analyticsService.WriteCSV: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("analyticsService.WriteCSV: %w", err)
	}
	if err := cw.WriteMonthly(report.Monthly); err != nil {
		return fmt.Errorf("analyticsService.WriteCSV: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("analyticsService.WriteCSV: %w", err)
	}
	return nil
}

func (s *analyticsService) WriteXLSX(ctx context.Context, w io.Writer) error {
	report, err := s.Report(ctx)
	if err != nil {
		return err
	}
	return xlsxexport.Write(w, report)
}
