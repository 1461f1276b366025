package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/catalog"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// Gateway is the slice of the core API client the product screens use
type Gateway interface {
	ListProducts(ctx context.Context, f shared.Filter) (*shared.Paginated[catalog.Product], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Service handles product screens
type Service struct {
	gateway Gateway
	logger  *zap.Logger
}

// NewService creates a new catalog service
func NewService(gw Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gw, logger: logger}
}

// List fetches a page of products
func (s *Service) List(ctx context.Context, req ListProductsRequest) (*shared.Paginated[catalog.Product], error) {
	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = req.Search
	if req.Status != "" {
		f = f.WithFilter("status", req.Status)
	}
	if req.CategoryID != nil {
		f = f.WithFilter("category_id", req.CategoryID.String())
	}
	return s.gateway.ListProducts(ctx, f)
}

// Get fetches a single product
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.gateway.GetProduct(ctx, id)
}

// Create normalizes the request and creates the product upstream
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	req.Barcode = strings.TrimSpace(req.Barcode)

	created, err := s.gateway.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Product created",
		zap.String("product_id", created.ID.String()),
		zap.String("code", created.Code))
	return created, nil
}

// Update updates a product upstream
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	updated, err := s.gateway.UpdateProduct(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Product updated", zap.String("product_id", id.String()))
	return updated, nil
}

// Delete removes a product. The core API refuses (409) when documents
// reference it; that verdict passes through.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
