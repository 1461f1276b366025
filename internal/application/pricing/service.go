// Package pricing contains the application service behind the price rule
// screens and the what-if simulator. Rule storage and authoritative
// evaluation belong to the core API; the simulator previews over a fetched
// rule set.
package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// rulesPageSize is the page size used when pulling the active rule set for
// a simulation.
const rulesPageSize = 200

// maxRulePages caps the simulation fetch loop in case the upstream total is
// inconsistent with the pages it returns.
const maxRulePages = 25

var hundredPercent = decimal.NewFromInt(100)

// Gateway is the slice of the core API client the pricing screens use
type Gateway interface {
	ListPriceRules(ctx context.Context, f shared.Filter) (*shared.Paginated[pricing.PriceRule], error)
	GetPriceRule(ctx context.Context, id uuid.UUID) (*pricing.PriceRule, error)
	CreatePriceRule(ctx context.Context, req CreatePriceRuleRequest) (*pricing.PriceRule, error)
	UpdatePriceRule(ctx context.Context, id uuid.UUID, req UpdatePriceRuleRequest) (*pricing.PriceRule, error)
	DeletePriceRule(ctx context.Context, id uuid.UUID) error
}

// Service handles price rule management and the local simulator
type Service struct {
	gateway Gateway
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new pricing service
func NewService(gw Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gw, logger: logger, now: time.Now}
}

// List fetches a page of price rules
func (s *Service) List(ctx context.Context, req ListPriceRulesRequest) (*shared.Paginated[pricing.PriceRule], error) {
	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = req.Search
	if req.Scope != "" {
		f = f.WithFilter("scope", req.Scope)
	}
	if req.Kind != "" {
		f = f.WithFilter("kind", req.Kind)
	}
	if req.Active != nil {
		if *req.Active {
			f = f.WithFilter("active", "true")
		} else {
			f = f.WithFilter("active", "false")
		}
	}
	return s.gateway.ListPriceRules(ctx, f)
}

// Get fetches a single price rule
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*pricing.PriceRule, error) {
	return s.gateway.GetPriceRule(ctx, id)
}

// Create validates the rule payload for its kind and creates it upstream
func (s *Service) Create(ctx context.Context, req CreatePriceRuleRequest) (*pricing.PriceRule, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Currency = strings.ToUpper(req.Currency)

	if err := validateRulePayload(req.Kind, req.Percent, req.FixedPrice, req.Tiers); err != nil {
		return nil, err
	}
	if err := validateScopeTarget(req.Scope, req.TargetID); err != nil {
		return nil, err
	}
	if req.ValidFrom != nil && req.ValidTo != nil && req.ValidTo.Before(*req.ValidFrom) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Rule validity window ends before it starts")
	}

	created, err := s.gateway.CreatePriceRule(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Price rule created",
		zap.String("rule_id", created.ID.String()),
		zap.String("kind", string(created.Kind)))
	return created, nil
}

// Update validates the changed fields and updates the rule upstream. Kind
// changes must bring the matching payload with them.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePriceRuleRequest) (*pricing.PriceRule, error) {
	if req.Kind != nil {
		if err := validateRulePayload(*req.Kind, req.Percent, req.FixedPrice, req.Tiers); err != nil {
			return nil, err
		}
	}
	if req.Scope != nil {
		if err := validateScopeTarget(*req.Scope, req.TargetID); err != nil {
			return nil, err
		}
	}
	if req.Currency != nil {
		upper := strings.ToUpper(*req.Currency)
		req.Currency = &upper
	}
	if req.ValidFrom != nil && req.ValidTo != nil && req.ValidTo.Before(*req.ValidFrom) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Rule validity window ends before it starts")
	}

	updated, err := s.gateway.UpdatePriceRule(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Price rule updated", zap.String("rule_id", id.String()))
	return updated, nil
}

// Delete removes a price rule
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeletePriceRule(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Price rule deleted", zap.String("rule_id", id.String()))
	return nil
}

// Simulate fetches the active rule set and previews what it would do to the
// given document line. Display-only: document pricing stays upstream.
func (s *Service) Simulate(ctx context.Context, req SimulateRequest) (*pricing.SimulationResult, error) {
	if req.Quantity == nil || !req.Quantity.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	}
	if req.BasePrice == nil || req.BasePrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Base price must not be negative")
	}

	at := s.now()
	if req.At != nil {
		at = *req.At
	}

	rules, err := s.fetchActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	in := pricing.SimulationInput{
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
		PartnerID:  req.PartnerID,
		Quantity:   *req.Quantity,
		BasePrice:  *req.BasePrice,
		Currency:   strings.ToUpper(req.Currency),
		At:         at,
	}

	result := pricing.Simulate(rules, in)
	s.logger.Debug("Pricing simulated",
		zap.Int("rules", len(rules)),
		zap.Bool("rule_applied", result.AppliedRuleID != nil))
	return &result, nil
}

// fetchActiveRules pages through the active rule set
func (s *Service) fetchActiveRules(ctx context.Context) ([]pricing.PriceRule, error) {
	f := shared.DefaultFilter()
	f.PageSize = rulesPageSize
	f.OrderBy = "priority"
	f.OrderDir = "asc"
	f = f.WithFilter("active", "true")

	rules := make([]pricing.PriceRule, 0, rulesPageSize)
	for {
		page, err := s.gateway.ListPriceRules(ctx, f)
		if err != nil {
			return nil, err
		}
		rules = append(rules, page.Items...)
		if len(page.Items) == 0 || int64(len(rules)) >= page.Total || f.Page >= maxRulePages {
			break
		}
		f.Page++
	}
	return rules, nil
}

// validateRulePayload checks that a rule carries the fields its kind needs
func validateRulePayload(kind string, percent, fixedPrice *decimal.Decimal, tiers []PriceTierRequest) error {
	switch pricing.RuleKind(kind) {
	case pricing.KindPercentDiscount:
		if percent == nil {
			return shared.NewDomainError("VALIDATION_ERROR", "Percent discount rules need a percent value")
		}
		if percent.IsNegative() || percent.GreaterThan(hundredPercent) {
			return shared.NewDomainError("VALIDATION_ERROR", "Discount percent must be between 0 and 100")
		}
	case pricing.KindFixedPrice:
		if fixedPrice == nil || fixedPrice.IsNegative() {
			return shared.NewDomainError("VALIDATION_ERROR", "Fixed price rules need a non-negative price")
		}
	case pricing.KindTiered:
		if len(tiers) == 0 {
			return shared.NewDomainError("VALIDATION_ERROR", "Tiered rules need at least one tier")
		}
		for i, tier := range tiers {
			if tier.MinQuantity == nil || !tier.MinQuantity.IsPositive() {
				return shared.NewDomainError("VALIDATION_ERROR",
					fmt.Sprintf("Tier %d: minimum quantity must be positive", i+1))
			}
			if tier.UnitPrice == nil || tier.UnitPrice.IsNegative() {
				return shared.NewDomainError("VALIDATION_ERROR",
					fmt.Sprintf("Tier %d: unit price must not be negative", i+1))
			}
		}
	}
	return nil
}

// validateScopeTarget checks that scoped rules point at a target
func validateScopeTarget(scope string, targetID *uuid.UUID) error {
	if pricing.RuleScope(scope) != pricing.ScopeAll && targetID == nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Scoped rules need a target")
	}
	return nil
}
