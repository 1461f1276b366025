package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	catalogapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/catalog"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/catalog"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// ListProducts fetches one page of products
func (c *Client) ListProducts(ctx context.Context, f shared.Filter) (*shared.Paginated[catalog.Product], error) {
	return callList[catalog.Product](ctx, c, apiPrefix+"/products", f)
}

// GetProduct fetches a single product
func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return call[catalog.Product](ctx, c, http.MethodGet, apiPrefix+"/products/"+id.String(), nil)
}

// CreateProduct creates a product upstream and returns the stored record
func (c *Client) CreateProduct(ctx context.Context, req catalogapp.CreateProductRequest) (*catalog.Product, error) {
	return call[catalog.Product](ctx, c, http.MethodPost, apiPrefix+"/products", req)
}

// UpdateProduct updates a product upstream
func (c *Client) UpdateProduct(ctx context.Context, id uuid.UUID, req catalogapp.UpdateProductRequest) (*catalog.Product, error) {
	return call[catalog.Product](ctx, c, http.MethodPut, apiPrefix+"/products/"+id.String(), req)
}

// DeleteProduct deletes a product upstream. Products referenced by documents
// come back as 409 verdicts.
func (c *Client) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/products/"+id.String(), nil)
}
