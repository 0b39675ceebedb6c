package invoice

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gstbill/internal/domain"
)

// gstinPattern matches a 15-character alphanumeric GSTIN.
var gstinPattern = regexp.MustCompile(`^[0-9A-Z]{15}$`)

// ValidGSTIN reports whether s matches the GSTIN format.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

// Validate checks a form before composition. It returns an error wrapping
// domain.ErrValidation with a user-correctable message, or nil. Compose
// itself never fails once a form passes here.
func Validate(form *Form) error {
	if strings.TrimSpace(form.Supplier.LegalName) == "" || form.Supplier.GSTIN == "" {
		return fmt.Errorf("%w: %s", domain.ErrProfileIncomplete, "supplier legal name and GSTIN are required")
	}
	if !ValidGSTIN(form.Supplier.GSTIN) {
		return validationErr("invalid supplier GSTIN format")
	}

	if strings.TrimSpace(form.Buyer.Name) == "" {
		return validationErr("buyer name is required")
	}
	// Buyer GSTIN is optional for unregistered buyers, but must be
	// well-formed when provided.
	if form.Buyer.GSTIN != "" && !ValidGSTIN(form.Buyer.GSTIN) {
		return validationErr("invalid buyer GSTIN format")
	}

	if form.Meta.InvoiceDate == "" {
		return validationErr("invoice date is required")
	}
	if _, err := time.Parse("2006-01-02", form.Meta.InvoiceDate); err != nil {
		return validationErr("invalid invoice date %q", form.Meta.InvoiceDate)
	}
	// Empty means the form never chose; composition defaults it to an
	// intrastate sale. Anything else must be a known value.
	if form.Meta.Classification != "" && !form.Meta.Classification.Valid() {
		return validationErr("unknown gst type %q", form.Meta.Classification)
	}
	if form.Meta.GSTRate < 0 {
		return validationErr("gst rate cannot be negative")
	}

	if len(form.Items) == 0 {
		return validationErr("at least one line item is required")
	}
	for i, item := range form.Items {
		if strings.TrimSpace(item.Description) == "" {
			return validationErr("row %d: description is required", i+1)
		}
		if item.Quantity <= 0 {
			return validationErr("row %d: quantity must be greater than zero", i+1)
		}
		if item.RatePerUnit < 0 {
			return validationErr("row %d: rate cannot be negative", i+1)
		}
	}

	return nil
}
