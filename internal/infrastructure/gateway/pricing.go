package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	pricingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListPriceRules fetches one page of price rules. The simulator fetches all
// active rules by paging through this.
func (c *Client) ListPriceRules(ctx context.Context, f shared.Filter) (*shared.Paginated[pricing.PriceRule], error) {
	return callList[pricing.PriceRule](ctx, c, apiPrefix+"/pricing/rules", f)
}

// GetPriceRule fetches a single price rule
func (c *Client) GetPriceRule(ctx context.Context, id uuid.UUID) (*pricing.PriceRule, error) {
	return call[pricing.PriceRule](ctx, c, http.MethodGet, apiPrefix+"/pricing/rules/"+id.String(), nil)
}

// CreatePriceRule creates a price rule upstream
func (c *Client) CreatePriceRule(ctx context.Context, req pricingapp.CreatePriceRuleRequest) (*pricing.PriceRule, error) {
	return call[pricing.PriceRule](ctx, c, http.MethodPost, apiPrefix+"/pricing/rules", req)
}

// UpdatePriceRule updates a price rule upstream
func (c *Client) UpdatePriceRule(ctx context.Context, id uuid.UUID, req pricingapp.UpdatePriceRuleRequest) (*pricing.PriceRule, error) {
	return call[pricing.PriceRule](ctx, c, http.MethodPut, apiPrefix+"/pricing/rules/"+id.String(), req)
}

// DeletePriceRule deletes a price rule upstream
func (c *Client) DeletePriceRule(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/pricing/rules/"+id.String(), nil)
}
