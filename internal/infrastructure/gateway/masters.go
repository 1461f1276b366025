package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// Tax rates

// ListTaxRates fetches one page of tax rates
func (c *Client) ListTaxRates(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.TaxRate], error) {
	return callList[masters.TaxRate](ctx, c, apiPrefix+"/taxes", f)
}

// GetTaxRate fetches a single tax rate
func (c *Client) GetTaxRate(ctx context.Context, id uuid.UUID) (*masters.TaxRate, error) {
	return call[masters.TaxRate](ctx, c, http.MethodGet, apiPrefix+"/taxes/"+id.String(), nil)
}

// CreateTaxRate creates a tax rate upstream
func (c *Client) CreateTaxRate(ctx context.Context, req mastersapp.CreateTaxRateRequest) (*masters.TaxRate, error) {
	return call[masters.TaxRate](ctx, c, http.MethodPost, apiPrefix+"/taxes", req)
}

// UpdateTaxRate updates a tax rate upstream
func (c *Client) UpdateTaxRate(ctx context.Context, id uuid.UUID, req mastersapp.UpdateTaxRateRequest) (*masters.TaxRate, error) {
	return call[masters.TaxRate](ctx, c, http.MethodPut, apiPrefix+"/taxes/"+id.String(), req)
}

// DeleteTaxRate deletes a tax rate upstream; rates in use come back 409
func (c *Client) DeleteTaxRate(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/taxes/"+id.String(), nil)
}

// Currencies

// ListCurrencies fetches one page of currencies
func (c *Client) ListCurrencies(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.Currency], error) {
	return callList[masters.Currency](ctx, c, apiPrefix+"/currencies", f)
}

// GetCurrency fetches a single currency
func (c *Client) GetCurrency(ctx context.Context, id uuid.UUID) (*masters.Currency, error) {
	return call[masters.Currency](ctx, c, http.MethodGet, apiPrefix+"/currencies/"+id.String(), nil)
}

// CreateCurrency creates a currency upstream
func (c *Client) CreateCurrency(ctx context.Context, req mastersapp.CreateCurrencyRequest) (*masters.Currency, error) {
	return call[masters.Currency](ctx, c, http.MethodPost, apiPrefix+"/currencies", req)
}

// UpdateCurrency updates a currency upstream
func (c *Client) UpdateCurrency(ctx context.Context, id uuid.UUID, req mastersapp.UpdateCurrencyRequest) (*masters.Currency, error) {
	return call[masters.Currency](ctx, c, http.MethodPut, apiPrefix+"/currencies/"+id.String(), req)
}

// DeleteCurrency deletes a currency upstream; the base currency comes back 409
func (c *Client) DeleteCurrency(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/currencies/"+id.String(), nil)
}

// Fiscal years

// ListFiscalYears fetches one page of fiscal years
func (c *Client) ListFiscalYears(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.FiscalYear], error) {
	return callList[masters.FiscalYear](ctx, c, apiPrefix+"/fiscal-years", f)
}

// GetFiscalYear fetches a single fiscal year
func (c *Client) GetFiscalYear(ctx context.Context, id uuid.UUID) (*masters.FiscalYear, error) {
	return call[masters.FiscalYear](ctx, c, http.MethodGet, apiPrefix+"/fiscal-years/"+id.String(), nil)
}

// CreateFiscalYear creates a fiscal year upstream
func (c *Client) CreateFiscalYear(ctx context.Context, req mastersapp.CreateFiscalYearRequest) (*masters.FiscalYear, error) {
	return call[masters.FiscalYear](ctx, c, http.MethodPost, apiPrefix+"/fiscal-years", req)
}

// UpdateFiscalYear updates a fiscal year upstream
func (c *Client) UpdateFiscalYear(ctx context.Context, id uuid.UUID, req mastersapp.UpdateFiscalYearRequest) (*masters.FiscalYear, error) {
	return call[masters.FiscalYear](ctx, c, http.MethodPut, apiPrefix+"/fiscal-years/"+id.String(), req)
}

// DeleteFiscalYear deletes a fiscal year upstream; years with postings come back 409
func (c *Client) DeleteFiscalYear(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/fiscal-years/"+id.String(), nil)
}

// Numbering schemes

// ListNumberingSchemes fetches one page of numbering schemes
func (c *Client) ListNumberingSchemes(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.NumberingScheme], error) {
	return callList[masters.NumberingScheme](ctx, c, apiPrefix+"/numbering-schemes", f)
}

// GetNumberingScheme fetches a single numbering scheme
func (c *Client) GetNumberingScheme(ctx context.Context, id uuid.UUID) (*masters.NumberingScheme, error) {
	return call[masters.NumberingScheme](ctx, c, http.MethodGet, apiPrefix+"/numbering-schemes/"+id.String(), nil)
}

// CreateNumberingScheme creates a numbering scheme upstream
func (c *Client) CreateNumberingScheme(ctx context.Context, req mastersapp.CreateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	return call[masters.NumberingScheme](ctx, c, http.MethodPost, apiPrefix+"/numbering-schemes", req)
}

// UpdateNumberingScheme updates a numbering scheme upstream
func (c *Client) UpdateNumberingScheme(ctx context.Context, id uuid.UUID, req mastersapp.UpdateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	return call[masters.NumberingScheme](ctx, c, http.MethodPut, apiPrefix+"/numbering-schemes/"+id.String(), req)
}

// DeleteNumberingScheme deletes a numbering scheme upstream
func (c *Client) DeleteNumberingScheme(ctx context.Context, id uuid.UUID) error {
	return callNoContent(ctx, c, http.MethodDelete, apiPrefix+"/numbering-schemes/"+id.String(), nil)
}

// Chart of accounts

// ListAccounts fetches the flat chart of accounts; the tree is built locally
func (c *Client) ListAccounts(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.Account], error) {
	return callList[masters.Account](ctx, c, apiPrefix+"/accounts", f)
}

// CreateAccount adds a ledger account upstream
func (c *Client) CreateAccount(ctx context.Context, req mastersapp.CreateAccountRequest) (*masters.Account, error) {
	return call[masters.Account](ctx, c, http.MethodPost, apiPrefix+"/accounts", req)
}

// UpdateAccount updates a ledger account upstream
func (c *Client) UpdateAccount(ctx context.Context, id uuid.UUID, req mastersapp.UpdateAccountRequest) (*masters.Account, error) {
	return call[masters.Account](ctx, c, http.MethodPut, apiPrefix+"/accounts/"+id.String(), req)
}
