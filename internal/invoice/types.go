// Package invoice assembles validated form state into the immutable payload
// transmitted to the PDF automation webhook.
package invoice

import "gstbill/internal/domain"

// FormLineItem is one row of the invoice form.
type FormLineItem struct {
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	RatePerUnit float64 `json:"rate_per_unit"`
}

// BuyerDetails identifies the invoiced party. GSTIN may be empty for
// unregistered buyers; VendorCode is optional.
type BuyerDetails struct {
	Name       string `json:"name"`
	GSTIN      string `json:"gstin"`
	Address    string `json:"address"`
	VendorCode string `json:"vendor_code"`
}

// Meta holds the invoice-level form fields.
type Meta struct {
	OrderRefNo     string                   `json:"order_ref_no"`
	OrderDate      string                   `json:"order_date"`
	InvoiceDate    string                   `json:"invoice_date"`
	Classification domain.GSTClassification `json:"gst_type"`
	GSTRate        float64                  `json:"gst_rate"`
}

// Form is the validated input to the composer.
type Form struct {
	Supplier domain.SupplierProfile `json:"supplier"`
	Buyer    BuyerDetails           `json:"buyer"`
	Meta     Meta                   `json:"meta"`
	Items    []FormLineItem         `json:"items"`
}

// PayloadMeta tags the submission with its action and creation time.
type PayloadMeta struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// SupplierDetails is the supplier block of the payload.
type SupplierDetails struct {
	LegalName     string `json:"legal_name"`
	GSTIN         string `json:"gstin"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	StateCode     string `json:"state_code,omitempty"`
	Email         string `json:"email,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`
	AuthSignatory string `json:"auth_signatory,omitempty"`
}

// PayloadBuyer is the buyer block. VendorCode is omitted entirely when not
// provided so the wire format distinguishes "not provided" from "empty".
type PayloadBuyer struct {
	Name       string `json:"name"`
	GSTIN      string `json:"gstin"`
	Address    string `json:"address"`
	VendorCode string `json:"vendor_code,omitempty"`
}

// PayloadInvoiceDetails is the invoice metadata block.
type PayloadInvoiceDetails struct {
	InvoiceDate    string                   `json:"invoice_date"`
	OrderRefNo     string                   `json:"order_ref_no,omitempty"`
	OrderDate      string                   `json:"order_date"`
	Classification domain.GSTClassification `json:"gst_type"`
	GSTRate        float64                  `json:"gst_rate"`
}

// PayloadLineItem is a line item with its computed amount and 1-based
// serial number. Rate duplicates RatePerUnit for PDF template compatibility.
type PayloadLineItem struct {
	SerialNo    int     `json:"serial_no"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
	RatePerUnit float64 `json:"rate_per_unit"`
	Amount      float64 `json:"amount"`
}

// TaxBreakup holds the per-component rates applied.
type TaxBreakup struct {
	CGSTRate float64 `json:"cgst_rate"`
	SGSTRate float64 `json:"sgst_rate"`
	IGSTRate float64 `json:"igst_rate"`
}

// Financials is the computed money block of the payload.
type Financials struct {
	TaxableTotal  float64    `json:"taxable_total"`
	CGSTAmount    float64    `json:"cgst_amount"`
	SGSTAmount    float64    `json:"sgst_amount"`
	IGSTAmount    float64    `json:"igst_amount"`
	GrandTotal    float64    `json:"grand_total"`
	AmountInWords string     `json:"amount_in_words"`
	TaxBreakup    TaxBreakup `json:"tax_breakup"`
	// Flattened copies of the breakup rates for simpler template access.
	CGSTRate float64 `json:"cgst_rate"`
	SGSTRate float64 `json:"sgst_rate"`
	IGSTRate float64 `json:"igst_rate"`
}

// Payload is the immutable submission document. A new one is built for each
// preview or submit cycle and never mutated afterwards.
type Payload struct {
	Meta            PayloadMeta           `json:"meta"`
	SupplierDetails SupplierDetails       `json:"supplier_details"`
	BuyerDetails    PayloadBuyer          `json:"buyer_details"`
	InvoiceDetails  PayloadInvoiceDetails `json:"invoice_details"`
	LineItems       []PayloadLineItem     `json:"line_items"`
	Financials      Financials            `json:"financials"`
}
