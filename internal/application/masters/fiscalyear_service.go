package masters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// FiscalYearGateway is the slice of the core API client the fiscal year screens use
type FiscalYearGateway interface {
	ListFiscalYears(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.FiscalYear], error)
	GetFiscalYear(ctx context.Context, id uuid.UUID) (*masters.FiscalYear, error)
	CreateFiscalYear(ctx context.Context, req CreateFiscalYearRequest) (*masters.FiscalYear, error)
	UpdateFiscalYear(ctx context.Context, id uuid.UUID, req UpdateFiscalYearRequest) (*masters.FiscalYear, error)
	DeleteFiscalYear(ctx context.Context, id uuid.UUID) error
}

// FiscalYearService handles the fiscal year master screens. Overlap checks
// and closing rules live in the core API.
type FiscalYearService struct {
	gateway FiscalYearGateway
	logger  *zap.Logger
}

// NewFiscalYearService creates a new fiscal year service
func NewFiscalYearService(gw FiscalYearGateway, logger *zap.Logger) *FiscalYearService {
	return &FiscalYearService{gateway: gw, logger: logger}
}

// List fetches a page of fiscal years
func (s *FiscalYearService) List(ctx context.Context, req ListFiscalYearsRequest) (*shared.Paginated[masters.FiscalYear], error) {
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
	if req.Closed != nil {
		f = f.WithFilter("closed", boolString(*req.Closed))
	}
	return s.gateway.ListFiscalYears(ctx, f)
}

// Get fetches a single fiscal year
func (s *FiscalYearService) Get(ctx context.Context, id uuid.UUID) (*masters.FiscalYear, error) {
	return s.gateway.GetFiscalYear(ctx, id)
}

// Create validates the period and creates the fiscal year upstream
func (s *FiscalYearService) Create(ctx context.Context, req CreateFiscalYearRequest) (*masters.FiscalYear, error) {
	req.Name = strings.TrimSpace(req.Name)
	if !req.EndDate.After(req.StartDate) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Fiscal year end date must be after the start date")
	}

	created, err := s.gateway.CreateFiscalYear(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fiscal year created",
		zap.String("fiscal_year_id", created.ID.String()),
		zap.String("name", created.Name))
	return created, nil
}

// Update updates a fiscal year upstream. When only one boundary changes the
// core API checks it against the stored other half.
func (s *FiscalYearService) Update(ctx context.Context, id uuid.UUID, req UpdateFiscalYearRequest) (*masters.FiscalYear, error) {
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Fiscal year end date must be after the start date")
	}
	updated, err := s.gateway.UpdateFiscalYear(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fiscal year updated", zap.String("fiscal_year_id", id.String()))
	return updated, nil
}

// Delete removes a fiscal year. Years with postings come back as a conflict
// from the core API.
func (s *FiscalYearService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteFiscalYear(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Fiscal year deleted", zap.String("fiscal_year_id", id.String()))
	return nil
}
