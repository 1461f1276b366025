package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/catalog"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListProducts(ctx context.Context, f shared.Filter) (*shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockGateway) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockGateway) CreateProduct(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockGateway) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockGateway) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogService_Create_NormalizesCode(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)

	var sent CreateProductRequest
	gw.On("CreateProduct", ctx, mock.AnythingOfType("catalog.CreateProductRequest")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(CreateProductRequest) }).
		Return(&catalog.Product{ID: uuid.New(), Code: "WID-01"}, nil)

	svc := NewService(gw, zap.NewNop())

	_, err := svc.Create(ctx, CreateProductRequest{
		Code: " wid-01 ",
		Name: " Widget ",
		Unit: "pcs",
	})
	require.NoError(t, err)
	assert.Equal(t, "WID-01", sent.Code)
	assert.Equal(t, "Widget", sent.Name)

	gw.AssertExpectations(t)
}

func TestCatalogService_List_BuildsFilter(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	categoryID := uuid.New()

	var sent shared.Filter
	page := shared.NewPaginated([]catalog.Product{}, 0, 1, 20)
	gw.On("ListProducts", ctx, mock.AnythingOfType("shared.Filter")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(shared.Filter) }).
		Return(&page, nil)

	svc := NewService(gw, zap.NewNop())

	_, err := svc.List(ctx, ListProductsRequest{
		Status:     "active",
		CategoryID: &categoryID,
		Search:     "widget",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", sent.Filters["status"])
	assert.Equal(t, categoryID.String(), sent.Filters["category_id"])
	assert.Equal(t, "widget", sent.Search)
	assert.Equal(t, 1, sent.Page)
	assert.Equal(t, 20, sent.PageSize)
}

func TestCatalogService_Delete_PassesVerdictThrough(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	gw := new(MockGateway)
	gw.On("DeleteProduct", ctx, id).Return(shared.ErrInvalidState)

	svc := NewService(gw, zap.NewNop())

	err := svc.Delete(ctx, id)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestCatalogService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	gw := new(MockGateway)
	gw.On("GetProduct", ctx, id).Return(&catalog.Product{ID: id, Code: "WID-01"}, nil)

	svc := NewService(gw, zap.NewNop())

	product, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "WID-01", product.Code)
}
