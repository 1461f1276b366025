package masters

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListTaxRatesRequest carries tax rate list query parameters
type ListTaxRatesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Scope    string `form:"scope" binding:"omitempty,oneof=sales purchase both"`
	Active   *bool  `form:"active"`
}

// ListCurrenciesRequest carries currency list query parameters
type ListCurrenciesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
}

// ListFiscalYearsRequest carries fiscal year list query parameters
type ListFiscalYearsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Closed   *bool  `form:"closed"`
}

// ListNumberingSchemesRequest carries numbering scheme list query parameters
type ListNumberingSchemesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Module   string `form:"module" binding:"omitempty,oneof=invoice voucher manufacturing_order partner product"`
	Active   *bool  `form:"active"`
}

// ListAccountsRequest carries chart-of-accounts list query parameters
type ListAccountsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=500"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=asset liability equity revenue expense"`
	Active   *bool  `form:"active"`
}

// CreateTaxRateRequest represents a request to create a tax rate
type CreateTaxRateRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Code        string           `json:"code" binding:"required,min=1,max=20"`
	RatePercent *decimal.Decimal `json:"rate_percent" binding:"required"`
	Scope       string           `json:"scope" binding:"required,oneof=sales purchase both"`
	Compound    bool             `json:"compound"`
}

// UpdateTaxRateRequest represents a request to update a tax rate
type UpdateTaxRateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	RatePercent *decimal.Decimal `json:"rate_percent"`
	Scope       *string          `json:"scope" binding:"omitempty,oneof=sales purchase both"`
	Compound    *bool            `json:"compound"`
	Active      *bool            `json:"active"`
}

// CreateCurrencyRequest represents a request to create a currency
type CreateCurrencyRequest struct {
	Code          string           `json:"code" binding:"required,len=3"`
	Name          string           `json:"name" binding:"required,min=1,max=100"`
	Symbol        string           `json:"symbol" binding:"max=10"`
	DecimalPlaces *int             `json:"decimal_places" binding:"omitempty,min=0,max=6"`
	ExchangeRate  *decimal.Decimal `json:"exchange_rate"`
}

// UpdateCurrencyRequest represents a request to update a currency
type UpdateCurrencyRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Symbol        *string          `json:"symbol" binding:"omitempty,max=10"`
	DecimalPlaces *int             `json:"decimal_places" binding:"omitempty,min=0,max=6"`
	ExchangeRate  *decimal.Decimal `json:"exchange_rate"`
	Active        *bool            `json:"active"`
}

// CreateFiscalYearRequest represents a request to create a fiscal year
type CreateFiscalYearRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=100"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// UpdateFiscalYearRequest represents a request to update a fiscal year
type UpdateFiscalYearRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Closed    *bool      `json:"closed"`
}

// CreateNumberingSchemeRequest represents a request to create a numbering scheme
type CreateNumberingSchemeRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Module          string `json:"module" binding:"required,oneof=invoice voucher manufacturing_order partner product"`
	Prefix          string `json:"prefix" binding:"max=20"`
	DateFormat      string `json:"date_format" binding:"omitempty,oneof=2006 200601 20060102"`
	SequencePadding int    `json:"sequence_padding" binding:"min=0,max=12"`
	NextNumber      int64  `json:"next_number" binding:"omitempty,min=1"`
	Suffix          string `json:"suffix" binding:"max=20"`
	Separator       string `json:"separator" binding:"max=3"`
}

// UpdateNumberingSchemeRequest represents a request to update a numbering scheme
type UpdateNumberingSchemeRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Prefix          *string `json:"prefix" binding:"omitempty,max=20"`
	DateFormat      *string `json:"date_format" binding:"omitempty,oneof=2006 200601 20060102"`
	SequencePadding *int    `json:"sequence_padding" binding:"omitempty,min=0,max=12"`
	NextNumber      *int64  `json:"next_number" binding:"omitempty,min=1"`
	Suffix          *string `json:"suffix" binding:"omitempty,max=20"`
	Separator       *string `json:"separator" binding:"omitempty,max=3"`
	Active          *bool   `json:"active"`
}

// PreviewNumberingRequest carries a scheme shape to preview without saving.
// Either an existing scheme ID or inline pattern fields.
type PreviewNumberingRequest struct {
	SchemeID        *uuid.UUID `json:"scheme_id"`
	Prefix          string     `json:"prefix" binding:"max=20"`
	DateFormat      string     `json:"date_format" binding:"omitempty,oneof=2006 200601 20060102"`
	SequencePadding int        `json:"sequence_padding" binding:"min=0,max=12"`
	NextNumber      int64      `json:"next_number" binding:"omitempty,min=1"`
	Suffix          string     `json:"suffix" binding:"max=20"`
	Separator       string     `json:"separator" binding:"max=3"`
	At              *time.Time `json:"at"`
}

// PreviewNumberingResponse is the previewed document number
type PreviewNumberingResponse struct {
	Number string    `json:"number"`
	At     time.Time `json:"at"`
}

// CreateAccountRequest represents a request to add a ledger account
type CreateAccountRequest struct {
	Code        string     `json:"code" binding:"required,min=1,max=20"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Type        string     `json:"type" binding:"required,oneof=asset liability equity revenue expense"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Description string     `json:"description" binding:"max=500"`
}

// UpdateAccountRequest represents a request to update a ledger account
type UpdateAccountRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
	Active      *bool      `json:"active"`
}
