package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func validForm() *invoice.Form {
	return &invoice.Form{
		Supplier: domain.SupplierProfile{
			LegalName: "Acme Traders Pvt Ltd",
			GSTIN:     "29AAAAA0000A1Z5",
			Address:   "12 MG Road, Bengaluru",
		},
		Buyer: invoice.BuyerDetails{
			Name:    "Sharma Enterprises",
			GSTIN:   "27BBBBB1111B2Z6",
			Address: "45 FC Road, Pune",
		},
		Meta: invoice.Meta{
			InvoiceDate:    "2025-04-10",
			OrderDate:      "2025-04-01",
			Classification: domain.Intrastate,
			GSTRate:        18,
		},
		Items: []invoice.FormLineItem{
			{Description: "Steel brackets", HSNCode: "7308", Quantity: 10, Unit: "pcs", RatePerUnit: 100},
		},
	}
}

func TestInvoiceService_Preview_Success(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	payload, err := svc.Preview(context.Background(), validForm())

	assert.NoError(t, err)
	assert.InDelta(t, 1000.0, payload.Financials.TaxableTotal, 0.001)
	assert.InDelta(t, 1180.0, payload.Financials.GrandTotal, 0.001)
	// Preview must never touch the webhook or the store.
	submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_Preview_InvalidForm(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	form := validForm()
	form.Items = nil

	payload, err := svc.Preview(context.Background(), form)

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_Submit_Success(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	submitter.On("Submit", mock.Anything, mock.AnythingOfType("*invoice.Payload")).Return(nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.InvoiceRecord")).Return(nil)

	payload, err := svc.Submit(context.Background(), validForm())

	assert.NoError(t, err)
	assert.NotNil(t, payload)
	submitter.AssertExpectations(t)
	repo.AssertExpectations(t)

	rec := repo.Calls[0].Arguments.Get(1).(*domain.InvoiceRecord)
	assert.Equal(t, "Sharma Enterprises", rec.ClientName)
	assert.Equal(t, string(domain.InvoiceStatusGenerated), rec.Status)
	assert.Equal(t, "2025-04-10", rec.InvoiceDate)
	assert.InDelta(t, 1180.0, rec.Amount, 0.001)
	assert.InDelta(t, 180.0, rec.GSTTotal, 0.001)
}

func TestInvoiceService_Submit_WebhookFailure(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	submitter.On("Submit", mock.Anything, mock.Anything).Return(domain.ErrSubmissionFailed)

	payload, err := svc.Submit(context.Background(), validForm())

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	// No record may be written for a rejected submission.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_Submit_PersistFailureStillSucceeds(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	submitter.On("Submit", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	payload, err := svc.Submit(context.Background(), validForm())

	// The webhook accepted the payload, so the caller sees success.
	assert.NoError(t, err)
	assert.NotNil(t, payload)
}

func TestInvoiceService_UpdateStatus_Success(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	id := uuid.New()
	repo.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusPaid).Return(nil)

	err := svc.UpdateStatus(context.Background(), id, domain.InvoiceStatusPaid)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestInvoiceService_UpdateStatus_UnknownStatus(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	err := svc.UpdateStatus(context.Background(), uuid.New(), "Archived")

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	id := uuid.New()
	repo.On("UpdateStatus", mock.Anything, id, domain.InvoiceStatusSent).Return(domain.ErrNotFound)

	err := svc.UpdateStatus(context.Background(), id, domain.InvoiceStatusSent)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_List(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	submitter := new(mocks.MockInvoiceSubmitter)
	svc := service.NewInvoiceService(repo, submitter, 100)

	expected := []domain.InvoiceRecord{
		{InvoiceNumber: "INV-20250410-120000", ClientName: "Sharma Enterprises"},
	}
	repo.On("List", mock.Anything, 100).Return(expected, nil)

	records, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, records)
	repo.AssertExpectations(t)
}
