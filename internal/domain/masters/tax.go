// Package masters holds the configuration masters the dashboard manages:
// tax rates, currencies, fiscal years, numbering schemes and the chart of
// accounts. The core API owns every rule about them; the only local logic
// is the numbering preview and the account tree builder.
package masters

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxScope restricts where a tax rate applies
type TaxScope string

const (
	TaxScopeSales    TaxScope = "sales"
	TaxScopePurchase TaxScope = "purchase"
	TaxScopeBoth     TaxScope = "both"
)

// TaxRate represents a configurable tax rate master
type TaxRate struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Scope       TaxScope        `json:"scope"`
	Compound    bool            `json:"compound"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
