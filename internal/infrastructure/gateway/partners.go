package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	partnerapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/partner"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/partner"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListPartners fetches one page of partners. Kind filtering rides in
// f.Filters["kind"].
func (c *Client) ListPartners(ctx context.Context, f shared.Filter) (*shared.Paginated[partner.Partner], error) {
	return callList[partner.Partner](ctx, c, apiPrefix+"/partners", f)
}

// GetPartner fetches a single partner
func (c *Client) GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	return call[partner.Partner](ctx, c, http.MethodGet, apiPrefix+"/partners/"+id.String(), nil)
}

// CreatePartner creates a partner upstream and returns the stored record
func (c *Client) CreatePartner(ctx context.Context, req partnerapp.CreatePartnerRequest) (*partner.Partner, error) {
	return call[partner.Partner](ctx, c, http.MethodPost, apiPrefix+"/partners", req)
}

// UpdatePartner updates a partner upstream. There is no delete: partners
// are archived server-side by clearing the active flag.
func (c *Client) UpdatePartner(ctx context.Context, id uuid.UUID, req partnerapp.UpdatePartnerRequest) (*partner.Partner, error) {
	return call[partner.Partner](ctx, c, http.MethodPut, apiPrefix+"/partners/"+id.String(), req)
}
