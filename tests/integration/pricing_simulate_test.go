package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/tests/testutil"
)

// The simulator fetches active rules upstream but evaluates them locally;
// these tests pin the whole round trip through the HTTP surface.

func TestSimulateAppliesBestPriorityRule(t *testing.T) {
	api := testutil.NewCoreAPI(t)
	stubLogin(api, time.Now().Add(time.Hour))

	productID := uuid.New()
	rules := []pricing.PriceRule{
		{
			ID:       uuid.New(),
			Name:     "Spring sale",
			Scope:    pricing.ScopeAll,
			Kind:     pricing.KindPercentDiscount,
			Percent:  decimal.NewFromInt(10),
			Priority: 10,
			Active:   true,
		},
		{
			ID:         uuid.New(),
			Name:       "Clearance price",
			Scope:      pricing.ScopeProduct,
			TargetID:   &productID,
			Kind:       pricing.KindFixedPrice,
			FixedPrice: decimal.NewFromInt(70),
			Priority:   1,
			Active:     true,
		},
	}
	api.RespondList("GET /api/v1/pricing/rules", rules, int64(len(rules)), 1, 100)

	d := NewDashboard(t, api, nil)
	cookie := login(t, d)

	qty := decimal.NewFromInt(3)
	base := decimal.NewFromInt(100)
	rec := testutil.DoJSON(t, d.Engine, http.MethodPost, "/api/v1/pricing/simulate",
		pricingapp.SimulateRequest{
			ProductID: &productID,
			Quantity:  &qty,
			BasePrice: &base,
			Currency:  "eur",
		},
		testutil.WithCookie(cookie.Name, cookie.Value))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result pricing.SimulationResult
	testutil.DecodeData(t, testutil.DecodeResponse(t, rec), &result)

	// Priority 1 beats priority 10: the fixed price wins over the discount
	require.NotNil(t, result.AppliedRuleID)
	assert.Equal(t, "Clearance price", result.AppliedRuleName)
	assert.True(t, decimal.NewFromInt(70).Equal(result.UnitPrice), "unit price: %s", result.UnitPrice)
	assert.True(t, decimal.NewFromInt(210).Equal(result.TotalPrice), "total price: %s", result.TotalPrice)
	assert.NotEmpty(t, result.Trail)
}

func TestSimulateWithNoMatchingRulesKeepsBasePrice(t *testing.T) {
	api := testutil.NewCoreAPI(t)
	stubLogin(api, time.Now().Add(time.Hour))
	api.RespondList("GET /api/v1/pricing/rules", []pricing.PriceRule{}, 0, 1, 100)

	d := NewDashboard(t, api, nil)
	cookie := login(t, d)

	qty := decimal.NewFromInt(1)
	base := decimal.RequireFromString("19.90")
	rec := testutil.DoJSON(t, d.Engine, http.MethodPost, "/api/v1/pricing/simulate",
		pricingapp.SimulateRequest{Quantity: &qty, BasePrice: &base},
		testutil.WithCookie(cookie.Name, cookie.Value))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result pricing.SimulationResult
	testutil.DecodeData(t, testutil.DecodeResponse(t, rec), &result)
	assert.Nil(t, result.AppliedRuleID)
	assert.True(t, base.Equal(result.UnitPrice))
	assert.True(t, result.DiscountAmount.IsZero())
}

func TestSimulateRejectsNonPositiveQuantity(t *testing.T) {
	api := testutil.NewCoreAPI(t)
	stubLogin(api, time.Now().Add(time.Hour))

	d := NewDashboard(t, api, nil)
	cookie := login(t, d)

	qty := decimal.Zero
	base := decimal.NewFromInt(10)
	rec := testutil.DoJSON(t, d.Engine, http.MethodPost, "/api/v1/pricing/simulate",
		pricingapp.SimulateRequest{Quantity: &qty, BasePrice: &base},
		testutil.WithCookie(cookie.Name, cookie.Value))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, api.RequestCount(http.MethodGet, "/api/v1/pricing/rules"),
		"invalid simulations must not fetch rules")
}
