package masters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// MockNumberingGateway is a mock implementation of NumberingGateway
type MockNumberingGateway struct {
	mock.Mock
}

func (m *MockNumberingGateway) ListNumberingSchemes(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.NumberingScheme], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[masters.NumberingScheme]), args.Error(1)
}

func (m *MockNumberingGateway) GetNumberingScheme(ctx context.Context, id uuid.UUID) (*masters.NumberingScheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.NumberingScheme), args.Error(1)
}

func (m *MockNumberingGateway) CreateNumberingScheme(ctx context.Context, req CreateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.NumberingScheme), args.Error(1)
}

func (m *MockNumberingGateway) UpdateNumberingScheme(ctx context.Context, id uuid.UUID, req UpdateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masters.NumberingScheme), args.Error(1)
}

func (m *MockNumberingGateway) DeleteNumberingScheme(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNumberingService_Preview_InlineFields(t *testing.T) {
	svc := NewNumberingService(new(MockNumberingGateway), zap.NewNop())

	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	resp, err := svc.Preview(context.Background(), PreviewNumberingRequest{
		Prefix:          "INV",
		DateFormat:      "2006",
		SequencePadding: 4,
		NextNumber:      42,
		At:              &at,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0042", resp.Number)
	assert.Equal(t, at, resp.At)
}

func TestNumberingService_Preview_DefaultsNextNumberToOne(t *testing.T) {
	svc := NewNumberingService(new(MockNumberingGateway), zap.NewNop())

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Preview(context.Background(), PreviewNumberingRequest{
		Prefix:          "PO",
		SequencePadding: 3,
		At:              &at,
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-001", resp.Number)
}

func TestNumberingService_Preview_FromStoredScheme(t *testing.T) {
	ctx := context.Background()
	schemeID := uuid.New()

	gw := new(MockNumberingGateway)
	gw.On("GetNumberingScheme", ctx, schemeID).Return(&masters.NumberingScheme{
		ID:              schemeID,
		Prefix:          "JV",
		DateFormat:      "200601",
		SequencePadding: 5,
		NextNumber:      7,
		Separator:       "/",
	}, nil)

	svc := NewNumberingService(gw, zap.NewNop())

	at := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Preview(ctx, PreviewNumberingRequest{SchemeID: &schemeID, At: &at})
	require.NoError(t, err)
	assert.Equal(t, "JV/202603/00007", resp.Number)
	gw.AssertExpectations(t)
}

func TestNumberingService_Preview_StoredSchemeNotFound(t *testing.T) {
	ctx := context.Background()
	schemeID := uuid.New()

	gw := new(MockNumberingGateway)
	gw.On("GetNumberingScheme", ctx, schemeID).Return(nil, shared.ErrNotFound)

	svc := NewNumberingService(gw, zap.NewNop())

	_, err := svc.Preview(ctx, PreviewNumberingRequest{SchemeID: &schemeID})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestNumberingService_Preview_UsesClockWhenAtOmitted(t *testing.T) {
	svc := NewNumberingService(new(MockNumberingGateway), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC) }

	resp, err := svc.Preview(context.Background(), PreviewNumberingRequest{
		Prefix:     "INV",
		DateFormat: "2006",
		NextNumber: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-9", resp.Number)
	assert.Equal(t, 2026, resp.At.Year())
}

func TestNumberingService_List_FiltersByModule(t *testing.T) {
	ctx := context.Background()
	gw := new(MockNumberingGateway)

	var sent shared.Filter
	page := shared.NewPaginated([]masters.NumberingScheme{}, 0, 1, 20)
	gw.On("ListNumberingSchemes", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(shared.Filter) }).
		Return(&page, nil)

	svc := NewNumberingService(gw, zap.NewNop())

	_, err := svc.List(ctx, ListNumberingSchemesRequest{Module: "invoice"})
	require.NoError(t, err)
	assert.Equal(t, "invoice", sent.Filters["module"])
}
