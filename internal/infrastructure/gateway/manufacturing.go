package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	productionapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/production"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/production"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListManufacturingOrders fetches one page of manufacturing orders
func (c *Client) ListManufacturingOrders(ctx context.Context, f shared.Filter) (*shared.Paginated[production.ManufacturingOrder], error) {
	return callList[production.ManufacturingOrder](ctx, c, apiPrefix+"/manufacturing/orders", f)
}

// GetManufacturingOrder fetches a single manufacturing order
func (c *Client) GetManufacturingOrder(ctx context.Context, id uuid.UUID) (*production.ManufacturingOrder, error) {
	return call[production.ManufacturingOrder](ctx, c, http.MethodGet, apiPrefix+"/manufacturing/orders/"+id.String(), nil)
}

// CreateManufacturingOrder creates an order upstream
func (c *Client) CreateManufacturingOrder(ctx context.Context, req productionapp.CreateOrderRequest) (*production.ManufacturingOrder, error) {
	return call[production.ManufacturingOrder](ctx, c, http.MethodPost, apiPrefix+"/manufacturing/orders", req)
}

// UpdateManufacturingOrder updates an order upstream
func (c *Client) UpdateManufacturingOrder(ctx context.Context, id uuid.UUID, req productionapp.UpdateOrderRequest) (*production.ManufacturingOrder, error) {
	return call[production.ManufacturingOrder](ctx, c, http.MethodPut, apiPrefix+"/manufacturing/orders/"+id.String(), req)
}

// DeleteManufacturingOrder deletes a draft order upstream
func (c *Client) DeleteManufacturingOrder(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/manufacturing/orders/"+id.String(), nil)
}

// ListBOMs fetches one page of bills of materials. BOMs are read-only on
// the dashboard.
func (c *Client) ListBOMs(ctx context.Context, f shared.Filter) (*shared.Paginated[production.BOM], error) {
	return callList[production.BOM](ctx, c, apiPrefix+"/manufacturing/boms", f)
}

// GetBOM fetches a single bill of materials
func (c *Client) GetBOM(ctx context.Context, id uuid.UUID) (*production.BOM, error) {
	return call[production.BOM](ctx, c, http.MethodGet, apiPrefix+"/manufacturing/boms/"+id.String(), nil)
}
