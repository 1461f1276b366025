package pricing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulationInput describes the hypothetical document line being priced
type SimulationInput struct {
	ProductID  *uuid.UUID      `json:"product_id,omitempty"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	PartnerID  *uuid.UUID      `json:"partner_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Currency   string          `json:"currency"`
	At         time.Time       `json:"at"`
}

// RuleTrace records why a rule did or did not fire, for the screen to show
type RuleTrace struct {
	RuleID   uuid.UUID `json:"rule_id"`
	RuleName string    `json:"rule_name"`
	Applied  bool      `json:"applied"`
	Reason   string    `json:"reason"`
}

// SimulationResult is the previewed outcome of evaluating the fetched rules
type SimulationResult struct {
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Currency        string          `json:"currency"`
	AppliedRuleID   *uuid.UUID      `json:"applied_rule_id,omitempty"`
	AppliedRuleName string          `json:"applied_rule_name,omitempty"`
	Trail           []RuleTrace     `json:"trail"`
}

// Simulate previews what the given rules would do to a document line. It is
// a client-side what-if: the first applicable rule in priority order wins,
// matching how the core API documents its evaluation. Ties on priority
// break on rule name so the preview is deterministic.
func Simulate(rules []PriceRule, in SimulationInput) SimulationResult {
	ordered := make([]PriceRule, len(rules))
	copy(ordered, rules)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].Name < ordered[j].Name
	})

	result := SimulationResult{
		UnitPrice: in.BasePrice,
		Currency:  in.Currency,
		Trail:     make([]RuleTrace, 0, len(ordered)),
	}

	applied := false
	for idx := range ordered {
		rule := &ordered[idx]
		trace := RuleTrace{RuleID: rule.ID, RuleName: rule.Name}

		switch {
		case applied:
			trace.Reason = "a higher-priority rule already applied"
		case !rule.Active:
			trace.Reason = "rule is inactive"
		case !rule.InWindow(in.At):
			trace.Reason = "outside validity window"
		case rule.Currency != "" && rule.Currency != in.Currency:
			trace.Reason = "currency mismatch"
		case !rule.Matches(in):
			trace.Reason = "scope does not match"
		default:
			unit, ok, reason := applyRule(rule, in)
			if ok {
				result.UnitPrice = unit
				result.AppliedRuleID = &rule.ID
				result.AppliedRuleName = rule.Name
				trace.Applied = true
				trace.Reason = "applied"
				applied = true
			} else {
				trace.Reason = reason
			}
		}

		result.Trail = append(result.Trail, trace)
	}

	result.TotalPrice = result.UnitPrice.Mul(in.Quantity)
	baseTotal := in.BasePrice.Mul(in.Quantity)
	result.DiscountAmount = baseTotal.Sub(result.TotalPrice)
	if baseTotal.GreaterThan(decimal.Zero) {
		result.DiscountPercent = result.DiscountAmount.Div(baseTotal).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		result.DiscountPercent = decimal.Zero
	}
	return result
}

// applyRule computes the unit price a rule yields. A tiered rule whose
// lowest tier is above the quantity yields nothing and the walk continues.
func applyRule(rule *PriceRule, in SimulationInput) (decimal.Decimal, bool, string) {
	switch rule.Kind {
	case KindPercentDiscount:
		factor := decimal.NewFromInt(1).Sub(rule.Percent.Div(decimal.NewFromInt(100)))
		return in.BasePrice.Mul(factor), true, ""
	case KindFixedPrice:
		return rule.FixedPrice, true, ""
	case KindTiered:
		tiers := make([]PriceTier, len(rule.Tiers))
		copy(tiers, rule.Tiers)
		sort.Slice(tiers, func(i, j int) bool {
			return tiers[i].MinQuantity.LessThan(tiers[j].MinQuantity)
		})
		for i := len(tiers) - 1; i >= 0; i-- {
			if in.Quantity.GreaterThanOrEqual(tiers[i].MinQuantity) {
				return tiers[i].UnitPrice, true, ""
			}
		}
		return decimal.Zero, false, "quantity below lowest tier"
	}
	return decimal.Zero, false, "unknown rule kind"
}
