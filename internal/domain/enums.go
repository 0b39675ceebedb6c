package domain

// GSTClassification determines how the tax amount splits into components.
type GSTClassification string

const (
	// Intrastate transactions split the tax evenly between CGST and SGST.
	Intrastate GSTClassification = "intrastate"
	// Interstate transactions charge the whole tax as IGST.
	Interstate GSTClassification = "interstate"
)

// Valid reports whether c is a known classification.
func (c GSTClassification) Valid() bool {
	return c == Intrastate || c == Interstate
}

// InvoiceStatus represents the lifecycle of a generated invoice record.
type InvoiceStatus string

const (
	InvoiceStatusGenerated InvoiceStatus = "Generated"
	InvoiceStatusSent      InvoiceStatus = "Sent"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
)

// Valid reports whether s is a known lifecycle status.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusGenerated || s == InvoiceStatusSent || s == InvoiceStatusPaid
}

// GSTRates lists the rate schedule offered to callers, in percent.
var GSTRates = []float64{5, 12, 18, 28}

// DefaultGSTRate is applied when a caller does not pick a rate.
const DefaultGSTRate = 18

// UnknownGSTIN is the sentinel used when a party has no tax identifier,
// so that grouping keys and display labels stay non-empty.
const UnknownGSTIN = "N/A"
