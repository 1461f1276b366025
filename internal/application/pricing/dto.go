package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListPriceRulesRequest carries price rule list query parameters
type ListPriceRulesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Scope    string `form:"scope" binding:"omitempty,oneof=all product category partner"`
	Kind     string `form:"kind" binding:"omitempty,oneof=percent_discount fixed_price tiered"`
	Active   *bool  `form:"active"`
}

// PriceTierRequest represents one quantity break of a tiered rule
type PriceTierRequest struct {
	MinQuantity *decimal.Decimal `json:"min_quantity" binding:"required"`
	UnitPrice   *decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreatePriceRuleRequest represents a request to create a price rule
type CreatePriceRuleRequest struct {
	Name       string             `json:"name" binding:"required,min=1,max=200"`
	Scope      string             `json:"scope" binding:"required,oneof=all product category partner"`
	TargetID   *uuid.UUID         `json:"target_id"`
	Kind       string             `json:"kind" binding:"required,oneof=percent_discount fixed_price tiered"`
	Percent    *decimal.Decimal   `json:"percent"`
	FixedPrice *decimal.Decimal   `json:"fixed_price"`
	Tiers      []PriceTierRequest `json:"tiers" binding:"omitempty,min=1,dive"`
	Priority   int                `json:"priority" binding:"min=0"`
	Currency   string             `json:"currency" binding:"omitempty,len=3"`
	ValidFrom  *time.Time         `json:"valid_from"`
	ValidTo    *time.Time         `json:"valid_to"`
}

// UpdatePriceRuleRequest represents a request to update a price rule
type UpdatePriceRuleRequest struct {
	Name       *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Scope      *string            `json:"scope" binding:"omitempty,oneof=all product category partner"`
	TargetID   *uuid.UUID         `json:"target_id"`
	Kind       *string            `json:"kind" binding:"omitempty,oneof=percent_discount fixed_price tiered"`
	Percent    *decimal.Decimal   `json:"percent"`
	FixedPrice *decimal.Decimal   `json:"fixed_price"`
	Tiers      []PriceTierRequest `json:"tiers" binding:"omitempty,min=1,dive"`
	Priority   *int               `json:"priority" binding:"omitempty,min=0"`
	Currency   *string            `json:"currency" binding:"omitempty,len=3"`
	ValidFrom  *time.Time         `json:"valid_from"`
	ValidTo    *time.Time         `json:"valid_to"`
	Active     *bool              `json:"active"`
}

// SimulateRequest represents the what-if form on the pricing screen
type SimulateRequest struct {
	ProductID  *uuid.UUID       `json:"product_id"`
	CategoryID *uuid.UUID       `json:"category_id"`
	PartnerID  *uuid.UUID       `json:"partner_id"`
	Quantity   *decimal.Decimal `json:"quantity" binding:"required"`
	BasePrice  *decimal.Decimal `json:"base_price" binding:"required"`
	Currency   string           `json:"currency" binding:"omitempty,len=3"`
	At         *time.Time       `json:"at"`
}
