package invoice

import (
	"time"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

// createAction is the action tag the automation webhook dispatches on.
const createAction = "create_invoice"

// Compose assembles the submission payload from a validated form. It is
// pure assembly: the same form at the same instant always yields the same
// payload, so live preview and final submission cannot drift.
func Compose(form *Form, now time.Time) *Payload {
	rate := form.Meta.GSTRate
	if rate == 0 {
		rate = domain.DefaultGSTRate
	}
	// The form defaults to an intrastate sale; the payload always carries
	// a concrete classification, never an empty enum.
	classification := form.Meta.Classification
	if classification == "" {
		classification = domain.Intrastate
	}

	var taxableTotal float64
	items := make([]PayloadLineItem, 0, len(form.Items))
	for i, item := range form.Items {
		amount := item.Quantity * item.RatePerUnit
		taxableTotal += amount
		items = append(items, PayloadLineItem{
			SerialNo:    i + 1,
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Rate:        item.RatePerUnit,
			RatePerUnit: item.RatePerUnit,
			Amount:      amount,
		})
	}

	taxes := gst.ComputeTax(taxableTotal, classification, rate)

	breakup := TaxBreakup{}
	if classification == domain.Intrastate {
		breakup.CGSTRate = rate / 2
		breakup.SGSTRate = rate / 2
	} else {
		breakup.IGSTRate = rate
	}

	return &Payload{
		Meta: PayloadMeta{
			Action:    createAction,
			Timestamp: now.UTC().Format(time.RFC3339),
		},
		SupplierDetails: SupplierDetails{
			LegalName:     form.Supplier.LegalName,
			GSTIN:         form.Supplier.GSTIN,
			Address:       form.Supplier.Address,
			City:          form.Supplier.City,
			StateCode:     form.Supplier.StateCode,
			Email:         form.Supplier.Email,
			BankName:      form.Supplier.BankName,
			AccountNumber: form.Supplier.AccountNumber,
			IFSCCode:      form.Supplier.IFSCCode,
			AuthSignatory: form.Supplier.AuthSignatory,
		},
		BuyerDetails: PayloadBuyer{
			Name:       form.Buyer.Name,
			GSTIN:      form.Buyer.GSTIN,
			Address:    form.Buyer.Address,
			VendorCode: form.Buyer.VendorCode,
		},
		InvoiceDetails: PayloadInvoiceDetails{
			InvoiceDate:    form.Meta.InvoiceDate,
			OrderRefNo:     form.Meta.OrderRefNo,
			OrderDate:      form.Meta.OrderDate,
			Classification: classification,
			GSTRate:        rate,
		},
		LineItems: items,
		Financials: Financials{
			TaxableTotal:  taxableTotal,
			CGSTAmount:    taxes.CGST,
			SGSTAmount:    taxes.SGST,
			IGSTAmount:    taxes.IGST,
			GrandTotal:    taxes.GrandTotal,
			AmountInWords: gst.NumberToIndianWords(taxes.GrandTotal),
			TaxBreakup:    breakup,
			CGSTRate:      breakup.CGSTRate,
			SGSTRate:      breakup.SGSTRate,
			IGSTRate:      breakup.IGSTRate,
		},
	}
}
