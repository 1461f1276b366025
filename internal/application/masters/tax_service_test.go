package masters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// MockTaxGateway is a mock implementation of TaxGateway
type MockTaxGateway struct {
	mock.Mock
}

func (m *MockTaxGateway) ListTaxRates(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.TaxRate], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[masters.TaxRate]), args.Error(1)
}

func (m *MockTaxGateway) GetTaxRate(ctx context.Context, id uuid.UUID) (*masters.TaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.TaxRate), args.Error(1)
}

func (m *MockTaxGateway) CreateTaxRate(ctx context.Context, req CreateTaxRateRequest) (*masters.TaxRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.TaxRate), args.Error(1)
}

func (m *MockTaxGateway) UpdateTaxRate(ctx context.Context, id uuid.UUID, req UpdateTaxRateRequest) (*masters.TaxRate, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.TaxRate), args.Error(1)
}

func (m *MockTaxGateway) DeleteTaxRate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func rate(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTaxService_Create_NormalizesCode(t *testing.T) {
	ctx := context.Background()
	gw := new(MockTaxGateway)

	var sent CreateTaxRateRequest
	gw.On("CreateTaxRate", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(CreateTaxRateRequest) }).
		Return(&masters.TaxRate{ID: uuid.New(), Code: "VAT18"}, nil)

	svc := NewTaxService(gw, zap.NewNop())

	_, err := svc.Create(ctx, CreateTaxRateRequest{
		Name:        "  VAT 18%  ",
		Code:        " vat18 ",
		RatePercent: rate("18"),
		Scope:       "both",
	})
	require.NoError(t, err)
	assert.Equal(t, "VAT18", sent.Code)
	assert.Equal(t, "VAT 18%", sent.Name)
}

func TestTaxService_Create_RejectsOutOfRangeRate(t *testing.T) {
	svc := NewTaxService(new(MockTaxGateway), zap.NewNop())

	for _, bad := range []string{"-1", "100.01", "250"} {
		_, err := svc.Create(context.Background(), CreateTaxRateRequest{
			Name:        "Bad",
			Code:        "BAD",
			RatePercent: rate(bad),
			Scope:       "sales",
		})
		require.Error(t, err, "rate %s should be rejected", bad)

		var dErr *shared.DomainError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, "VALIDATION_ERROR", dErr.Code)
	}
}

func TestTaxService_Create_AcceptsBoundaryRates(t *testing.T) {
	ctx := context.Background()
	gw := new(MockTaxGateway)
	gw.On("CreateTaxRate", ctx, mock.Anything).
		Return(&masters.TaxRate{ID: uuid.New(), Code: "ZERO"}, nil)

	svc := NewTaxService(gw, zap.NewNop())

	for _, ok := range []string{"0", "100"} {
		_, err := svc.Create(ctx, CreateTaxRateRequest{
			Name:        "Edge",
			Code:        "EDGE",
			RatePercent: rate(ok),
			Scope:       "sales",
		})
		require.NoError(t, err, "rate %s should be accepted", ok)
	}
}

func TestTaxService_Update_RejectsOutOfRangeRate(t *testing.T) {
	svc := NewTaxService(new(MockTaxGateway), zap.NewNop())

	_, err := svc.Update(context.Background(), uuid.New(), UpdateTaxRateRequest{RatePercent: rate("101")})
	require.Error(t, err)
}

func TestTaxService_List_AppliesFilters(t *testing.T) {
	ctx := context.Background()
	gw := new(MockTaxGateway)

	var sent shared.Filter
	page := shared.NewPaginated([]masters.TaxRate{}, 0, 1, 20)
	gw.On("ListTaxRates", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(shared.Filter) }).
		Return(&page, nil)

	svc := NewTaxService(gw, zap.NewNop())

	active := true
	_, err := svc.List(ctx, ListTaxRatesRequest{Scope: "sales", Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "sales", sent.Filters["scope"])
	assert.Equal(t, "true", sent.Filters["active"])
	assert.Equal(t, 1, sent.Page)
	assert.Equal(t, 20, sent.PageSize)
}

func TestTaxService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	gw := new(MockTaxGateway)
	gw.On("DeleteTaxRate", ctx, id).Return(nil)

	svc := NewTaxService(gw, zap.NewNop())
	require.NoError(t, svc.Delete(ctx, id))
	gw.AssertExpectations(t)
}
