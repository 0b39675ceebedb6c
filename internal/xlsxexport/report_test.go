package xlsxexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
)

func TestWrite_Workbook(t *testing.T) {
	report := &domain.GSTReport{
		Totals: domain.Totals{Output: 540, Input: 90, Net: 450, Payable: 450},
		Monthly: []domain.MonthlyPoint{
			{Month: "2025-01", Liability: 180, Credit: 90},
			{Month: "2025-02", Liability: 360, Credit: 0},
		},
		Clients: []domain.ClientStats{
			{Name: "Acme", GSTIN: "29ABCDE1234F1Z5", TotalSales: 3540, TotalGST: 540,
				Invoices: []domain.InvoiceRecord{{}, {}}},
		},
		Vendors: []domain.VendorStats{
			{Name: "Initech", GSTIN: "27KLMNO9012P3Z1", TotalSpent: 590, TotalInputCredit: 90},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Summary", "Monthly", "Clients", "Vendors"}, f.GetSheetList())

	output, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "540", output)

	month, err := f.GetCellValue("Monthly", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01", month)

	client, err := f.GetCellValue("Clients", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", client)

	invoiceCount, err := f.GetCellValue("Clients", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2", invoiceCount)

	vendor, err := f.GetCellValue("Vendors", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Initech", vendor)
}

func TestWrite_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &domain.GSTReport{}))
	assert.NotZero(t, buf.Len())
}
