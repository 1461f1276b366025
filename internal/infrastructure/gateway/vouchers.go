package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListVouchers fetches one page of vouchers
func (c *Client) ListVouchers(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Voucher], error) {
	return callList[billing.Voucher](ctx, c, apiPrefix+"/vouchers", f)
}

// GetVoucher fetches a single voucher with its legs
func (c *Client) GetVoucher(ctx context.Context, id uuid.UUID) (*billing.Voucher, error) {
	return call[billing.Voucher](ctx, c, http.MethodGet, apiPrefix+"/vouchers/"+id.String(), nil)
}

// CreateVoucher creates a voucher upstream; balance is checked there
func (c *Client) CreateVoucher(ctx context.Context, req billingapp.CreateVoucherRequest) (*billing.Voucher, error) {
	return call[billing.Voucher](ctx, c, http.MethodPost, apiPrefix+"/vouchers", req)
}

// UpdateVoucher updates a draft voucher upstream
func (c *Client) UpdateVoucher(ctx context.Context, id uuid.UUID, req billingapp.UpdateVoucherRequest) (*billing.Voucher, error) {
	return call[billing.Voucher](ctx, c, http.MethodPut, apiPrefix+"/vouchers/"+id.String(), req)
}

// DeleteVoucher deletes a draft voucher upstream
func (c *Client) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/vouchers/"+id.String(), nil)
}
