package production

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/production"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListManufacturingOrders(ctx context.Context, f shared.Filter) (*shared.Paginated[production.ManufacturingOrder], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[production.ManufacturingOrder]), args.Error(1)
}

func (m *MockGateway) GetManufacturingOrder(ctx context.Context, id uuid.UUID) (*production.ManufacturingOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ManufacturingOrder), args.Error(1)
}

func (m *MockGateway) CreateManufacturingOrder(ctx context.Context, req CreateOrderRequest) (*production.ManufacturingOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ManufacturingOrder), args.Error(1)
}

func (m *MockGateway) UpdateManufacturingOrder(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*production.ManufacturingOrder, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ManufacturingOrder), args.Error(1)
}

func (m *MockGateway) DeleteManufacturingOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGateway) ListBOMs(ctx context.Context, f shared.Filter) (*shared.Paginated[production.BOM], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[production.BOM]), args.Error(1)
}

func (m *MockGateway) GetBOM(ctx context.Context, id uuid.UUID) (*production.BOM, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.BOM), args.Error(1)
}

func qty(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductionService_CreateOrder_RejectsZeroQuantity(t *testing.T) {
	gw := new(MockGateway)
	svc := NewService(gw, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		ProductID: uuid.New(),
		Quantity:  qty("0"),
	})
	require.Error(t, err)

	var dErr *shared.DomainError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "VALIDATION_ERROR", dErr.Code)
	gw.AssertExpectations(t)
}

func TestProductionService_CreateOrder_RejectsBackwardsSchedule(t *testing.T) {
	gw := new(MockGateway)
	svc := NewService(gw, zap.NewNop())

	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		ProductID:    uuid.New(),
		Quantity:     qty("5"),
		PlannedStart: &start,
		PlannedEnd:   &end,
	})
	require.Error(t, err)

	var dErr *shared.DomainError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "VALIDATION_ERROR", dErr.Code)
}

func TestProductionService_CreateOrder_Success(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	gw.On("CreateManufacturingOrder", ctx, mock.Anything).
		Return(&production.ManufacturingOrder{ID: uuid.New(), Number: "MO-2026-0001"}, nil)

	svc := NewService(gw, zap.NewNop())

	order, err := svc.CreateOrder(ctx, CreateOrderRequest{
		ProductID: uuid.New(),
		Quantity:  qty("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "MO-2026-0001", order.Number)
	gw.AssertExpectations(t)
}

func TestProductionService_UpdateOrder_RejectsNegativeQuantity(t *testing.T) {
	gw := new(MockGateway)
	svc := NewService(gw, zap.NewNop())

	_, err := svc.UpdateOrder(context.Background(), uuid.New(), UpdateOrderRequest{
		Quantity: qty("-1"),
	})
	require.Error(t, err)
}

func TestProductionService_ListOrders_BuildsFilter(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	productID := uuid.New()

	var sent shared.Filter
	page := shared.NewPaginated([]production.ManufacturingOrder{}, 0, 1, 20)
	gw.On("ListManufacturingOrders", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(shared.Filter) }).
		Return(&page, nil)

	svc := NewService(gw, zap.NewNop())

	_, err := svc.ListOrders(ctx, ListOrdersRequest{Status: "in_progress", ProductID: &productID})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", sent.Filters["status"])
	assert.Equal(t, productID.String(), sent.Filters["product_id"])
}

func TestProductionService_ListBOMs_ActiveFlag(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)

	var sent shared.Filter
	page := shared.NewPaginated([]production.BOM{}, 0, 1, 20)
	gw.On("ListBOMs", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(shared.Filter) }).
		Return(&page, nil)

	svc := NewService(gw, zap.NewNop())

	active := true
	_, err := svc.ListBOMs(ctx, ListBOMsRequest{Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "true", sent.Filters["active"])
}

func TestProductionService_DeleteOrder_PassesVerdictThrough(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	gw := new(MockGateway)
	gw.On("DeleteManufacturingOrder", ctx, id).Return(shared.ErrInvalidState)

	svc := NewService(gw, zap.NewNop())
	assert.ErrorIs(t, svc.DeleteOrder(ctx, id), shared.ErrInvalidState)
}
