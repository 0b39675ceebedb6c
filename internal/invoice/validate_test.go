package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbill/internal/domain"
)

func TestValidGSTIN(t *testing.T) {
	assert.True(t, ValidGSTIN("29ABCDE1234F1Z5"))
	assert.False(t, ValidGSTIN(""))
	assert.False(t, ValidGSTIN("29ABCDE1234F1Z"))      // 14 chars
	assert.False(t, ValidGSTIN("29abcde1234f1z5"))     // lowercase
	assert.False(t, ValidGSTIN("29ABCDE1234F1Z5X"))    // 16 chars
	assert.False(t, ValidGSTIN("29ABCDE-1234F1Z"))     // punctuation
}

func TestValidate_AcceptsValidForm(t *testing.T) {
	assert.NoError(t, Validate(validForm()))
}

func TestValidate_SupplierProfileIncomplete(t *testing.T) {
	form := validForm()
	form.Supplier.LegalName = ""

	err := Validate(form)
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
}

func TestValidate_SupplierGSTINFormat(t *testing.T) {
	form := validForm()
	form.Supplier.GSTIN = "BADGSTIN"

	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_BuyerNameRequired(t *testing.T) {
	form := validForm()
	form.Buyer.Name = "   "

	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_BuyerGSTINOptionalButChecked(t *testing.T) {
	form := validForm()
	form.Buyer.GSTIN = ""
	assert.NoError(t, Validate(form))

	form.Buyer.GSTIN = "not-a-gstin"
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_InvoiceDate(t *testing.T) {
	form := validForm()
	form.Meta.InvoiceDate = ""
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)

	form.Meta.InvoiceDate = "02-05-2025"
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_Classification(t *testing.T) {
	form := validForm()
	form.Meta.Classification = "offshore"

	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_LineItems(t *testing.T) {
	form := validForm()
	form.Items = nil
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)

	form = validForm()
	form.Items[0].Description = ""
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)

	form = validForm()
	form.Items[1].Quantity = 0
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)

	form = validForm()
	form.Items[0].RatePerUnit = -1
	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}

func TestValidate_NegativeRate(t *testing.T) {
	form := validForm()
	form.Meta.GSTRate = -5

	assert.ErrorIs(t, Validate(form), domain.ErrValidation)
}
