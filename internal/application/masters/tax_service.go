// Package masters contains the application services behind the
// configuration master screens: tax rates, currencies, fiscal years,
// numbering schemes and the chart of accounts. The core API owns every
// business rule; these services validate form input, normalize it and
// forward. The numbering preview and the account tree are the only
// computations performed here.
package masters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

var maxRatePercent = decimal.NewFromInt(100)

// TaxGateway is the slice of the core API client the tax rate screens use
type TaxGateway interface {
	ListTaxRates(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.TaxRate], error)
	GetTaxRate(ctx context.Context, id uuid.UUID) (*masters.TaxRate, error)
	CreateTaxRate(ctx context.Context, req CreateTaxRateRequest) (*masters.TaxRate, error)
	UpdateTaxRate(ctx context.Context, id uuid.UUID, req UpdateTaxRateRequest) (*masters.TaxRate, error)
	DeleteTaxRate(ctx context.Context, id uuid.UUID) error
}

// TaxService handles the tax rate master screens
type TaxService struct {
	gateway TaxGateway
	logger  *zap.Logger
}

// NewTaxService creates a new tax rate service
func NewTaxService(gw TaxGateway, logger *zap.Logger) *TaxService {
	return &TaxService{gateway: gw, logger: logger}
}

// List fetches a page of tax rates
func (s *TaxService) List(ctx context.Context, req ListTaxRatesRequest) (*shared.Paginated[masters.TaxRate], error) {
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
	if req.Scope != "" {
		f = f.WithFilter("scope", req.Scope)
	}
	if req.Active != nil {
		f = f.WithFilter("active", boolString(*req.Active))
	}
	return s.gateway.ListTaxRates(ctx, f)
}

// Get fetches a single tax rate
func (s *TaxService) Get(ctx context.Context, id uuid.UUID) (*masters.TaxRate, error) {
	return s.gateway.GetTaxRate(ctx, id)
}

// Create normalizes the request and creates the tax rate upstream
func (s *TaxService) Create(ctx context.Context, req CreateTaxRateRequest) (*masters.TaxRate, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRatePercent(req.RatePercent); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateTaxRate(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Tax rate created",
		zap.String("tax_rate_id", created.ID.String()),
		zap.String("code", created.Code))
	return created, nil
}

// Update updates a tax rate upstream
func (s *TaxService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxRateRequest) (*masters.TaxRate, error) {
	if req.RatePercent != nil {
		if err := validateRatePercent(req.RatePercent); err != nil {
			return nil, err
		}
	}
	updated, err := s.gateway.UpdateTaxRate(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Tax rate updated", zap.String("tax_rate_id", id.String()))
	return updated, nil
}

// Delete removes a tax rate. Rates referenced by documents come back as a
// conflict from the core API.
func (s *TaxService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteTaxRate(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Tax rate deleted", zap.String("tax_rate_id", id.String()))
	return nil
}

// validateRatePercent bounds a rate to 0..100. Tax math itself happens
// upstream; this only catches form typos before a round trip.
func validateRatePercent(rate *decimal.Decimal) error {
	if rate == nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Tax rate is required")
	}
	if rate.IsNegative() || rate.GreaterThan(maxRatePercent) {
		return shared.NewDomainError("VALIDATION_ERROR", "Tax rate must be between 0 and 100 percent")
	}
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
