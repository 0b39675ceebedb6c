package port

import (
	"context"

	"gstbill/internal/invoice"
)

// InvoiceSubmitter transmits a composed payload to the PDF automation
// pipeline. Delivery is at-most-once per call; failures surface to the
// caller, who is free to resubmit the same payload.
type InvoiceSubmitter interface {
	Submit(ctx context.Context, payload *invoice.Payload) error
}
