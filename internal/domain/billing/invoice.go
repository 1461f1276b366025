// Package billing holds invoice and voucher types as the core API presents
// them. Totals, tax amounts and posting status are computed upstream and
// rendered verbatim here.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales from purchase invoices
type InvoiceKind string

const (
	InvoiceKindSale     InvoiceKind = "sale"
	InvoiceKindPurchase InvoiceKind = "purchase"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusConfirmed     InvoiceStatus = "confirmed"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// InvoiceLine represents one line of an invoice
type InvoiceLine struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRateID   *uuid.UUID      `json:"tax_rate_id,omitempty"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Invoice represents a sales or purchase invoice
type Invoice struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Kind        InvoiceKind     `json:"kind"`
	Status      InvoiceStatus   `json:"status"`
	PartnerID   uuid.UUID       `json:"partner_id"`
	PartnerName string          `json:"partner_name,omitempty"`
	Date        time.Time       `json:"date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Currency    string          `json:"currency"`
	Lines       []InvoiceLine   `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxTotal    decimal.Decimal `json:"tax_total"`
	Total       decimal.Decimal `json:"total"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsOverdue reports whether the invoice should carry the overdue badge.
// Display-level only; dunning is the core API's business.
func (i *Invoice) IsOverdue(at time.Time) bool {
	if i.DueDate == nil || i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusCancelled {
		return false
	}
	return i.AmountDue.IsPositive() && at.After(*i.DueDate)
}

// IsEditable reports whether the edit form should open for this invoice
func (i *Invoice) IsEditable() bool {
	return i.Status == InvoiceStatusDraft
}
