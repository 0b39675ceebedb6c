// Package webhook transmits composed invoice payloads to the external
// automation pipeline that renders the PDF.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/invoice"
	"gstbill/internal/port"
)

// Client posts invoice payloads to the configured webhook URL. Delivery is
// at-most-once: no retries, no buffering; a failed submission is surfaced
// and the caller may resubmit the same payload.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a Client for the configured webhook.
func NewClient(cfg *config.WebhookConfig) port.InvoiceSubmitter {
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
	}
}

// Submit posts the payload as JSON. Any non-2xx status or transport failure
// wraps domain.ErrSubmissionFailed. The response body is not parsed on
// success; a success status is the whole contract.
func (c *Client) Submit(ctx context.Context, payload *invoice.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: webhook returned status %d", domain.ErrSubmissionFailed, resp.StatusCode)
	}
	return nil
}
