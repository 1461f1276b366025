package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListInvoices fetches one page of invoices. Kind and status filters ride
// in f.Filters.
func (c *Client) ListInvoices(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Invoice], error) {
	return callList[billing.Invoice](ctx, c, apiPrefix+"/invoices", f)
}

// GetInvoice fetches a single invoice with its lines
func (c *Client) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return call[billing.Invoice](ctx, c, http.MethodGet, apiPrefix+"/invoices/"+id.String(), nil)
}

// CreateInvoice creates an invoice upstream; totals come back computed
func (c *Client) CreateInvoice(ctx context.Context, req billingapp.CreateInvoiceRequest) (*billing.Invoice, error) {
	return call[billing.Invoice](ctx, c, http.MethodPost, apiPrefix+"/invoices", req)
}

// UpdateInvoice updates a draft invoice upstream
func (c *Client) UpdateInvoice(ctx context.Context, id uuid.UUID, req billingapp.UpdateInvoiceRequest) (*billing.Invoice, error) {
	return call[billing.Invoice](ctx, c, http.MethodPut, apiPrefix+"/invoices/"+id.String(), req)
}

// DeleteInvoice deletes a draft invoice upstream
func (c *Client) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/invoices/"+id.String(), nil)
}
