package partner

import "github.com/shopspring/decimal"

// CreatePartnerRequest represents a request to create a new partner.
// Binding tags cover presentation-level checks only; uniqueness and credit
// rules are the core API's verdicts.
type CreatePartnerRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Kind        string           `json:"kind" binding:"required,oneof=customer vendor both"`
	ContactName string           `json:"contact_name" binding:"max=100"`
	Email       string           `json:"email" binding:"omitempty,email,max=200"`
	Phone       string           `json:"phone" binding:"max=50"`
	TaxNumber   string           `json:"tax_number" binding:"max=50"`
	Address     string           `json:"address" binding:"max=500"`
	City        string           `json:"city" binding:"max=100"`
	Country     string           `json:"country" binding:"max=100"`
	Currency    string           `json:"currency" binding:"omitempty,len=3"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// UpdatePartnerRequest represents a request to update a partner. Nil fields
// are left untouched upstream.
type UpdatePartnerRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Kind        *string          `json:"kind" binding:"omitempty,oneof=customer vendor both"`
	ContactName *string          `json:"contact_name" binding:"omitempty,max=100"`
	Email       *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	TaxNumber   *string          `json:"tax_number" binding:"omitempty,max=50"`
	Address     *string          `json:"address" binding:"omitempty,max=500"`
	City        *string          `json:"city" binding:"omitempty,max=100"`
	Country     *string          `json:"country" binding:"omitempty,max=100"`
	Currency    *string          `json:"currency" binding:"omitempty,len=3"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Active      *bool            `json:"active"`
}

// ListPartnersRequest represents the partner list query string
type ListPartnersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Kind     string `form:"kind" binding:"omitempty,oneof=customer vendor both"`
}
