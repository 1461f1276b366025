package masters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// CurrencyGateway is the slice of the core API client the currency screens use
type CurrencyGateway interface {
	ListCurrencies(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.Currency], error)
	GetCurrency(ctx context.Context, id uuid.UUID) (*masters.Currency, error)
	CreateCurrency(ctx context.Context, req CreateCurrencyRequest) (*masters.Currency, error)
	UpdateCurrency(ctx context.Context, id uuid.UUID, req UpdateCurrencyRequest) (*masters.Currency, error)
	DeleteCurrency(ctx context.Context, id uuid.UUID) error
}

// CurrencyService handles the currency master screens. Exchange rates are
// display values published by the core API; revaluation stays upstream.
type CurrencyService struct {
	gateway CurrencyGateway
	logger  *zap.Logger
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(gw CurrencyGateway, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{gateway: gw, logger: logger}
}

// List fetches a page of currencies
func (s *CurrencyService) List(ctx context.Context, req ListCurrenciesRequest) (*shared.Paginated[masters.Currency], error) {
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
	if req.Active != nil {
		f = f.WithFilter("active", boolString(*req.Active))
	}
	return s.gateway.ListCurrencies(ctx, f)
}

// Get fetches a single currency
func (s *CurrencyService) Get(ctx context.Context, id uuid.UUID) (*masters.Currency, error) {
	return s.gateway.GetCurrency(ctx, id)
}

// Create normalizes the ISO code and creates the currency upstream
func (s *CurrencyService) Create(ctx context.Context, req CreateCurrencyRequest) (*masters.Currency, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	if req.ExchangeRate != nil && !req.ExchangeRate.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Exchange rate must be positive")
	}

	created, err := s.gateway.CreateCurrency(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Currency created",
		zap.String("currency_id", created.ID.String()),
		zap.String("code", created.Code))
	return created, nil
}

// Update updates a currency upstream
func (s *CurrencyService) Update(ctx context.Context, id uuid.UUID, req UpdateCurrencyRequest) (*masters.Currency, error) {
	if req.ExchangeRate != nil && !req.ExchangeRate.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Exchange rate must be positive")
	}
	updated, err := s.gateway.UpdateCurrency(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Currency updated", zap.String("currency_id", id.String()))
	return updated, nil
}

// Delete removes a currency. Deleting the base currency or one still used
// on documents comes back as a conflict from the core API.
func (s *CurrencyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteCurrency(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Currency deleted", zap.String("currency_id", id.String()))
	return nil
}
