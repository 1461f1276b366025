package production

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/production"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// Gateway is the slice of the core API client the manufacturing screens use
type Gateway interface {
	ListManufacturingOrders(ctx context.Context, f shared.Filter) (*shared.Paginated[production.ManufacturingOrder], error)
	GetManufacturingOrder(ctx context.Context, id uuid.UUID) (*production.ManufacturingOrder, error)
	CreateManufacturingOrder(ctx context.Context, req CreateOrderRequest) (*production.ManufacturingOrder, error)
	UpdateManufacturingOrder(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*production.ManufacturingOrder, error)
	DeleteManufacturingOrder(ctx context.Context, id uuid.UUID) error
	ListBOMs(ctx context.Context, f shared.Filter) (*shared.Paginated[production.BOM], error)
	GetBOM(ctx context.Context, id uuid.UUID) (*production.BOM, error)
}

// Service handles manufacturing order and BOM screens. BOMs are read-only
// here: they are maintained in the core system directly.
type Service struct {
	gateway Gateway
	logger  *zap.Logger
}

// NewService creates a new production service
func NewService(gw Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gw, logger: logger}
}

// ListOrders fetches a page of manufacturing orders
func (s *Service) ListOrders(ctx context.Context, req ListOrdersRequest) (*shared.Paginated[production.ManufacturingOrder], error) {
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
	if req.ProductID != nil {
		f = f.WithFilter("product_id", req.ProductID.String())
	}
	return s.gateway.ListManufacturingOrders(ctx, f)
}

// GetOrder fetches a single manufacturing order
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*production.ManufacturingOrder, error) {
	return s.gateway.GetManufacturingOrder(ctx, id)
}

// CreateOrder validates the schedule and creates the order upstream
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*production.ManufacturingOrder, error) {
	if req.Quantity != nil && !req.Quantity.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be greater than zero")
	}
	if req.PlannedStart != nil && req.PlannedEnd != nil && req.PlannedEnd.Before(*req.PlannedStart) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Planned end must not be before planned start")
	}

	created, err := s.gateway.CreateManufacturingOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Manufacturing order created",
		zap.String("order_id", created.ID.String()),
		zap.String("number", created.Number))
	return created, nil
}

// UpdateOrder validates the changed fields and updates the order upstream
func (s *Service) UpdateOrder(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*production.ManufacturingOrder, error) {
	if req.Quantity != nil && !req.Quantity.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be greater than zero")
	}
	if req.PlannedStart != nil && req.PlannedEnd != nil && req.PlannedEnd.Before(*req.PlannedStart) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Planned end must not be before planned start")
	}

	updated, err := s.gateway.UpdateManufacturingOrder(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Manufacturing order updated", zap.String("order_id", id.String()))
	return updated, nil
}

// DeleteOrder removes a manufacturing order. Only draft orders delete; the
// core API answers 409 for the rest.
func (s *Service) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteManufacturingOrder(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Manufacturing order deleted", zap.String("order_id", id.String()))
	return nil
}

// ListBOMs fetches a page of bills of materials
func (s *Service) ListBOMs(ctx context.Context, req ListBOMsRequest) (*shared.Paginated[production.BOM], error) {
	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	f.Search = req.Search
	if req.ProductID != nil {
		f = f.WithFilter("product_id", req.ProductID.String())
	}
	if req.Active != nil {
		f = f.WithFilter("active", strconv.FormatBool(*req.Active))
	}
	return s.gateway.ListBOMs(ctx, f)
}

// GetBOM fetches a single bill of materials with its lines
func (s *Service) GetBOM(ctx context.Context, id uuid.UUID) (*production.BOM, error) {
	return s.gateway.GetBOM(ctx, id)
}
