package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ProfitAndLoss(ctx context.Context, p reports.Period) (*reports.ProfitLoss, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.ProfitLoss), args.Error(1)
}

func (m *MockGateway) BalanceSheet(ctx context.Context, asOf time.Time) (*reports.BalanceSheet, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.BalanceSheet), args.Error(1)
}

func (m *MockGateway) TrialBalance(ctx context.Context, asOf time.Time) (*reports.TrialBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.TrialBalance), args.Error(1)
}

func (m *MockGateway) PartnerLedger(ctx context.Context, partnerID uuid.UUID, p reports.Period) (*reports.PartnerLedger, error) {
	args := m.Called(ctx, partnerID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.PartnerLedger), args.Error(1)
}

func (m *MockGateway) SalesRegister(ctx context.Context, p reports.Period) (*reports.SalesRegister, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.SalesRegister), args.Error(1)
}

func TestReportService_ProfitAndLoss_PassesPeriod(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	gw := new(MockGateway)
	gw.On("ProfitAndLoss", ctx, reports.Period{From: from, To: to}).
		Return(&reports.ProfitLoss{From: from, To: to, Currency: "USD"}, nil)

	svc := NewService(gw, zap.NewNop())

	r, err := svc.ProfitAndLoss(ctx, PeriodRequest{From: from, To: to})
	require.NoError(t, err)
	assert.Equal(t, "USD", r.Currency)
	gw.AssertExpectations(t)
}

func TestReportService_ProfitAndLoss_RejectsInvertedPeriod(t *testing.T) {
	svc := NewService(new(MockGateway), zap.NewNop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.ProfitAndLoss(context.Background(), PeriodRequest{From: from, To: from.AddDate(0, -1, 0)})
	require.Error(t, err)

	var dErr *shared.DomainError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "VALIDATION_ERROR", dErr.Code)
}

func TestReportService_ProfitAndLoss_OpenEndedPeriodAllowed(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	gw.On("ProfitAndLoss", ctx, reports.Period{}).
		Return(&reports.ProfitLoss{Currency: "USD"}, nil)

	svc := NewService(gw, zap.NewNop())

	_, err := svc.ProfitAndLoss(ctx, PeriodRequest{})
	require.NoError(t, err)
}

func TestReportService_PartnerLedger_RequiresPartner(t *testing.T) {
	svc := NewService(new(MockGateway), zap.NewNop())

	_, err := svc.PartnerLedger(context.Background(), PartnerLedgerRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Partner")
}

func TestReportService_BalanceSheet_ZeroAsOfPassesThrough(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	gw.On("BalanceSheet", ctx, time.Time{}).
		Return(&reports.BalanceSheet{Currency: "USD"}, nil)

	svc := NewService(gw, zap.NewNop())

	_, err := svc.BalanceSheet(ctx, AsOfRequest{})
	require.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestReportService_RecordsGeneratedMetric(t *testing.T) {
	ctx := context.Background()
	gw := new(MockGateway)
	gw.On("ProfitAndLoss", ctx, reports.Period{}).
		Return(&reports.ProfitLoss{Currency: "PKR"}, nil)

	svc := NewService(gw, zap.NewNop())
	metrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  noop.NewMeterProvider().Meter("test"),
		Logger: zap.NewNop(),
	})
	require.NoError(t, err)
	svc.SetBusinessMetrics(metrics)

	_, err = svc.ProfitAndLoss(ctx, PeriodRequest{})
	require.NoError(t, err)
}
