// Package xlsxexport renders a GST report as an Excel workbook with
// Summary, Monthly, Clients, and Vendors sheets.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
)

const (
	sheetSummary = "Summary"
	sheetMonthly = "Monthly"
	sheetClients = "Clients"
	sheetVendors = "Vendors"
)

// Write builds the workbook for report and writes it to w.
func Write(w io.Writer, report *domain.GSTReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}
	for _, name := range []string{sheetMonthly, sheetClients, sheetVendors} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsxexport: create sheet %s: %w", name, err)
		}
	}

	if err := writeSummary(f, report); err != nil {
		return err
	}
	if err := writeMonthly(f, report.Monthly); err != nil {
		return err
	}
	if err := writeClients(f, report.Clients); err != nil {
		return err
	}
	if err := writeVendors(f, report.Vendors); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsxexport: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsxexport: set row %s!%d: %w", sheet, row, err)
	}
	return nil
}

func writeSummary(f *excelize.File, report *domain.GSTReport) error {
	carryForward := "No"
	if report.Totals.CarryForward {
		carryForward = "Yes"
	}
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Output Liability", report.Totals.Output},
		{"Total Input Credit", report.Totals.Input},
		{"Net", report.Totals.Net},
		{"Net Payable", report.Totals.Payable},
		{"Excess Credit Carried Forward", carryForward},
		{"Records Missing Dates", report.MissingDates},
	}
	for i, row := range rows {
		if err := setRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMonthly(f *excelize.File, points []domain.MonthlyPoint) error {
	if err := setRow(f, sheetMonthly, 1, []interface{}{"Month", "Liability (Output)", "Credit (Input)"}); err != nil {
		return err
	}
	for i, p := range points {
		if err := setRow(f, sheetMonthly, i+2, []interface{}{p.Month, p.Liability, p.Credit}); err != nil {
			return err
		}
	}
	return nil
}

func writeClients(f *excelize.File, clients []domain.ClientStats) error {
	if err := setRow(f, sheetClients, 1, []interface{}{"Client", "GSTIN", "Total Sales", "GST Collected", "Invoices"}); err != nil {
		return err
	}
	for i, c := range clients {
		if err := setRow(f, sheetClients, i+2, []interface{}{c.Name, c.GSTIN, c.TotalSales, c.TotalGST, len(c.Invoices)}); err != nil {
			return err
		}
	}
	return nil
}

func writeVendors(f *excelize.File, vendors []domain.VendorStats) error {
	if err := setRow(f, sheetVendors, 1, []interface{}{"Vendor", "GSTIN", "Total Spent", "Input Credit"}); err != nil {
		return err
	}
	for i, v := range vendors {
		if err := setRow(f, sheetVendors, i+2, []interface{}{v.Name, v.GSTIN, v.TotalSpent, v.TotalInputCredit}); err != nil {
			return err
		}
	}
	return nil
}
