package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest represents one line of an invoice being created or
// replaced. Line totals and tax amounts come back computed by the core API.
type InvoiceLineRequest struct {
	ProductID   *uuid.UUID       `json:"product_id"`
	Description string           `json:"description" binding:"required,max=500"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string           `json:"unit" binding:"max=20"`
	UnitPrice   *decimal.Decimal `json:"unit_price" binding:"required"`
	TaxRateID   *uuid.UUID       `json:"tax_rate_id"`
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	Kind      string               `json:"kind" binding:"required,oneof=sale purchase"`
	PartnerID uuid.UUID            `json:"partner_id" binding:"required"`
	Date      time.Time            `json:"date" binding:"required"`
	DueDate   *time.Time           `json:"due_date"`
	Currency  string               `json:"currency" binding:"omitempty,len=3"`
	Lines     []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
	Notes     string               `json:"notes" binding:"max=2000"`
}

// UpdateInvoiceRequest represents a request to update a draft invoice.
// Sending lines replaces the whole line set, matching the edit screen.
type UpdateInvoiceRequest struct {
	PartnerID *uuid.UUID           `json:"partner_id"`
	Date      *time.Time           `json:"date"`
	DueDate   *time.Time           `json:"due_date"`
	Currency  *string              `json:"currency" binding:"omitempty,len=3"`
	Lines     []InvoiceLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
	Notes     *string              `json:"notes" binding:"omitempty,max=2000"`
	Status    *string              `json:"status" binding:"omitempty,oneof=draft confirmed cancelled"`
}

// VoucherLineRequest represents one leg of a voucher being created or
// replaced. Balance is the core API's check.
type VoucherLineRequest struct {
	AccountID   uuid.UUID        `json:"account_id" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
	Debit       *decimal.Decimal `json:"debit"`
	Credit      *decimal.Decimal `json:"credit"`
}

// CreateVoucherRequest represents a request to create a voucher
type CreateVoucherRequest struct {
	Kind      string               `json:"kind" binding:"required,oneof=payment receipt journal"`
	Date      time.Time            `json:"date" binding:"required"`
	PartnerID *uuid.UUID           `json:"partner_id"`
	Currency  string               `json:"currency" binding:"omitempty,len=3"`
	Reference string               `json:"reference" binding:"max=100"`
	Lines     []VoucherLineRequest `json:"lines" binding:"required,min=2,dive"`
	Notes     string               `json:"notes" binding:"max=2000"`
}

// UpdateVoucherRequest represents a request to update a draft voucher
type UpdateVoucherRequest struct {
	Date      *time.Time           `json:"date"`
	PartnerID *uuid.UUID           `json:"partner_id"`
	Currency  *string              `json:"currency" binding:"omitempty,len=3"`
	Reference *string              `json:"reference" binding:"omitempty,max=100"`
	Lines     []VoucherLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
	Notes     *string              `json:"notes" binding:"omitempty,max=2000"`
	Status    *string              `json:"status" binding:"omitempty,oneof=draft posted cancelled"`
}

// ListInvoicesRequest represents the invoice list query string
type ListInvoicesRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string     `form:"search"`
	Kind      string     `form:"kind" binding:"omitempty,oneof=sale purchase"`
	Status    string     `form:"status" binding:"omitempty,oneof=draft confirmed partially_paid paid cancelled"`
	PartnerID *uuid.UUID `form:"partner_id"`
}

// ListVouchersRequest represents the voucher list query string
type ListVouchersRequest struct {
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string     `form:"search"`
	Kind      string     `form:"kind" binding:"omitempty,oneof=payment receipt journal"`
	Status    string     `form:"status" binding:"omitempty,oneof=draft posted cancelled"`
	PartnerID *uuid.UUID `form:"partner_id"`
}

// StoredDocument describes an uploaded rendered document and how to fetch it
type StoredDocument struct {
	Key       string    `json:"document_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Size      int64     `json:"size"`
}

// PrintResult is either an inline PDF or a pointer to an uploaded one,
// depending on whether document storage is enabled.
type PrintResult struct {
	PDF      []byte
	FileName string
	Document *StoredDocument
}
