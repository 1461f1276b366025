// Package pricing holds price rule types and the what-if simulator the
// pricing screen runs locally. Authoritative rule evaluation happens in the
// core API when documents are priced; the simulator only previews.
package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleScope restricts which documents a rule can touch
type RuleScope string

const (
	ScopeAll      RuleScope = "all"
	ScopeProduct  RuleScope = "product"
	ScopeCategory RuleScope = "category"
	ScopePartner  RuleScope = "partner"
)

// RuleKind determines how a rule changes the price
type RuleKind string

const (
	KindPercentDiscount RuleKind = "percent_discount"
	KindFixedPrice      RuleKind = "fixed_price"
	KindTiered          RuleKind = "tiered"
)

// PriceTier represents a quantity break inside a tiered rule
type PriceTier struct {
	MinQuantity decimal.Decimal `json:"min_quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PriceRule represents a pricing rule master
type PriceRule struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Scope      RuleScope       `json:"scope"`
	TargetID   *uuid.UUID      `json:"target_id,omitempty"` // product/category/partner the scope points at
	Kind       RuleKind        `json:"kind"`
	Percent    decimal.Decimal `json:"percent"`
	FixedPrice decimal.Decimal `json:"fixed_price"`
	Tiers      []PriceTier     `json:"tiers,omitempty"`
	Priority   int             `json:"priority"`
	Currency   string          `json:"currency,omitempty"` // empty matches any
	ValidFrom  *time.Time      `json:"valid_from,omitempty"`
	ValidTo    *time.Time      `json:"valid_to,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// InWindow reports whether the rule is valid at the given time
func (r *PriceRule) InWindow(at time.Time) bool {
	if r.ValidFrom != nil && at.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && at.After(*r.ValidTo) {
		return false
	}
	return true
}

// Matches reports whether the rule's scope covers the simulated document
func (r *PriceRule) Matches(in SimulationInput) bool {
	switch r.Scope {
	case ScopeAll:
		return true
	case ScopeProduct:
		return r.TargetID != nil && in.ProductID != nil && *r.TargetID == *in.ProductID
	case ScopeCategory:
		return r.TargetID != nil && in.CategoryID != nil && *r.TargetID == *in.CategoryID
	case ScopePartner:
		return r.TargetID != nil && in.PartnerID != nil && *r.TargetID == *in.PartnerID
	}
	return false
}
