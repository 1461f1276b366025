// Package catalog holds product types as the core API presents them.
// Pricing, stock and validation rules live upstream; the dashboard only
// renders what it receives.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a sellable or manufacturable item
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Unit          string          `json:"unit"`
	Barcode       string          `json:"barcode,omitempty"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	TaxRateID     *uuid.UUID      `json:"tax_rate_id,omitempty"`
	Status        ProductStatus   `json:"status"`
	Manufactured  bool            `json:"manufactured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsActive reports whether the product can appear on new documents
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
