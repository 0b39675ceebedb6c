package gst

import "gstbill/internal/domain"

// TaxBreakdown is the result of a GST computation. Exactly one of
// {CGST,SGST} or {IGST} is non-zero, dictated by the classification; the
// unused components are zero rather than absent so consumers can sum
// unconditionally.
type TaxBreakdown struct {
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	IGST       float64 `json:"igst"`
	TaxAmount  float64 `json:"tax_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// ComputeTax derives the GST components and grand total for a taxable
// amount. A zero ratePercent falls back to domain.DefaultGSTRate. The
// function is total: negative or non-finite inputs flow through the
// arithmetic unchanged, and upstream validation owns rejecting them.
func ComputeTax(taxable float64, classification domain.GSTClassification, ratePercent float64) TaxBreakdown {
	if ratePercent == 0 {
		ratePercent = domain.DefaultGSTRate
	}

	tax := taxable * ratePercent / 100
	b := TaxBreakdown{
		TaxAmount:  tax,
		GrandTotal: taxable + tax,
	}

	if classification == domain.Intrastate {
		b.CGST = tax / 2
		b.SGST = tax / 2
	} else {
		b.IGST = tax
	}
	return b
}

// FromInclusiveTotal extracts the GST component from a tax-inclusive total:
// tax = total * rate / (100 + rate), the algebraic inverse of ComputeTax's
// grand total. Used to backfill a liability figure for historical records
// that carry no stored tax amount. Non-positive totals yield zero.
func FromInclusiveTotal(total, ratePercent float64) float64 {
	if total <= 0 {
		return 0
	}
	if ratePercent == 0 {
		ratePercent = domain.DefaultGSTRate
	}
	return total * ratePercent / (100 + ratePercent)
}
