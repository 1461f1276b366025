// Package partner holds the unified customer/vendor entity as the core API
// presents it. The service never enforces partner invariants locally; the
// types here mirror the upstream JSON for the dashboard screens.
package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes how a partner trades with us
type Kind string

const (
	KindCustomer Kind = "customer"
	KindVendor   Kind = "vendor"
	KindBoth     Kind = "both"
)

// IsValid reports whether the kind is one the core API accepts
func (k Kind) IsValid() bool {
	switch k {
	case KindCustomer, KindVendor, KindBoth:
		return true
	}
	return false
}

// Partner represents a unified customer/vendor record
type Partner struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Kind        Kind            `json:"kind"`
	ContactName string          `json:"contact_name,omitempty"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	TaxNumber   string          `json:"tax_number,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	Country     string          `json:"country,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Balance     decimal.Decimal `json:"balance"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsCustomer reports whether the partner buys from us
func (p *Partner) IsCustomer() bool {
	return p.Kind == KindCustomer || p.Kind == KindBoth
}

// IsVendor reports whether the partner sells to us
func (p *Partner) IsVendor() bool {
	return p.Kind == KindVendor || p.Kind == KindBoth
}
