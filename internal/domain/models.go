package domain

import (
	"time"

	"github.com/google/uuid"
)

// SupplierProfile holds the issuing company's details used on every invoice.
type SupplierProfile struct {
	ID            uuid.UUID `db:"id" json:"id"`
	LegalName     string    `db:"legal_name" json:"legal_name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	Address       string    `db:"address" json:"address"`
	City          string    `db:"city" json:"city"`
	StateCode     string    `db:"state_code" json:"state_code"`
	Email         string    `db:"email" json:"email"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	IFSCCode      string    `db:"ifsc_code" json:"ifsc_code"`
	AuthSignatory string    `db:"auth_signatory" json:"auth_signatory"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceRecord is a historical sales transaction read from storage.
// InvoiceDate is an ISO-8601 date string; an empty value means the date was
// never captured and aggregation falls back to the current month.
type InvoiceRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	ClientName    string    `db:"client_name" json:"client_name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	Status        string    `db:"status" json:"status"`
	Amount        float64   `db:"amount" json:"amount"`
	InvoiceDate   string    `db:"invoice_date" json:"invoice_date"`
	PDFLink       string    `db:"pdf_link" json:"pdf_link"`
	GSTTotal      float64   `db:"gst_total" json:"gst_total"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ExpenseRecord is a historical purchase transaction; its GSTAmount is
// claimed as input tax credit.
type ExpenseRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Date          string    `db:"date" json:"date"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	VendorName    string    `db:"vendor_name" json:"vendor_name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	TaxableAmount float64   `db:"taxable_amount" json:"taxable_amount"`
	GSTAmount     float64   `db:"gst_amount" json:"gst_amount"`
	TotalAmount   float64   `db:"total_amount" json:"total_amount"`
	Category      string    `db:"category" json:"category"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Totals holds the aggregate GST position across all records.
// Net may be negative; a negative net is excess input credit carried
// forward, so Payable clamps it to zero and CarryForward signals the case.
type Totals struct {
	Output       float64 `json:"output"`
	Input        float64 `json:"input"`
	Net          float64 `json:"net"`
	Payable      float64 `json:"payable"`
	CarryForward bool    `json:"carry_forward"`
}

// MonthlyPoint is one YYYY-MM bucket of the liability-vs-credit series.
type MonthlyPoint struct {
	Month     string  `json:"month"`
	Liability float64 `json:"liability"`
	Credit    float64 `json:"credit"`
}

// ClientStats is the per-client rollup of sales and GST collected.
// Invoices keeps the contributing records in insertion order for drill-down.
type ClientStats struct {
	Name       string          `json:"name"`
	GSTIN      string          `json:"gstin"`
	TotalSales float64         `json:"total_sales"`
	TotalGST   float64         `json:"total_gst"`
	Invoices   []InvoiceRecord `json:"invoices"`
}

// VendorStats is the per-vendor rollup of spend and input credit.
type VendorStats struct {
	Name             string  `json:"name"`
	GSTIN            string  `json:"gstin"`
	TotalSpent       float64 `json:"total_spent"`
	TotalInputCredit float64 `json:"total_input_credit"`
}

// DistributionSlice is one entry of a top-N distribution for charts.
type DistributionSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GSTReport is the full derived analytics output. It is recomputed from
// scratch on every request; nothing in it is incremental.
type GSTReport struct {
	Totals             Totals              `json:"totals"`
	Monthly            []MonthlyPoint      `json:"monthly"`
	Clients            []ClientStats       `json:"clients"`
	Vendors            []VendorStats       `json:"vendors"`
	ClientDistribution []DistributionSlice `json:"client_distribution"`
	VendorDistribution []DistributionSlice `json:"vendor_distribution"`
	MissingDates       int                 `json:"missing_dates"`
}
