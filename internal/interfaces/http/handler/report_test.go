package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	reportsapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/reports"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

type mockReportGateway struct {
	mock.Mock
}

func (m *mockReportGateway) ProfitAndLoss(ctx context.Context, p reports.Period) (*reports.ProfitLoss, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.ProfitLoss), args.Error(1)
}

func (m *mockReportGateway) BalanceSheet(ctx context.Context, asOf time.Time) (*reports.BalanceSheet, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.BalanceSheet), args.Error(1)
}

func (m *mockReportGateway) TrialBalance(ctx context.Context, asOf time.Time) (*reports.TrialBalance, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.TrialBalance), args.Error(1)
}

func (m *mockReportGateway) PartnerLedger(ctx context.Context, partnerID uuid.UUID, p reports.Period) (*reports.PartnerLedger, error) {
	args := m.Called(ctx, partnerID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.PartnerLedger), args.Error(1)
}

func (m *mockReportGateway) SalesRegister(ctx context.Context, p reports.Period) (*reports.SalesRegister, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.SalesRegister), args.Error(1)
}

func newReportRig(t *testing.T) (*gin.Engine, *mockReportGateway) {
	t.Helper()

	gw := &mockReportGateway{}
	svc := reportsapp.NewService(gw, zap.NewNop())
	h := NewReportHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/v1/reports/profit-loss", h.ProfitAndLoss)
	r.GET("/api/v1/reports/balance-sheet", h.BalanceSheet)
	r.GET("/api/v1/reports/trial-balance", h.TrialBalance)
	r.GET("/api/v1/reports/partner-ledger", h.PartnerLedger)
	r.GET("/api/v1/reports/sales-register", h.SalesRegister)
	return r, gw
}

func profitLossFixture() *reports.ProfitLoss {
	return &reports.ProfitLoss{
		From:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency: "PKR",
		Income: []reports.ReportLine{
			{AccountCode: "4000", Label: "Sales", Amount: decimal.NewFromInt(250000)},
		},
		Expenses: []reports.ReportLine{
			{AccountCode: "5000", Label: "Cost of goods sold", Amount: decimal.NewFromInt(140000)},
		},
		TotalIncome:   decimal.NewFromInt(250000),
		TotalExpenses: decimal.NewFromInt(140000),
		NetProfit:     decimal.NewFromInt(110000),
	}
}

func TestReportHandler_ProfitAndLoss_JSONByDefault(t *testing.T) {
	r, gw := newReportRig(t)
	gw.On("ProfitAndLoss", mock.Anything, mock.Anything).Return(profitLossFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/profit-loss?from=2026-01-01&to=2026-03-31", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "net_profit")
	assert.Contains(t, w.Body.String(), "110000")
}

func TestReportHandler_ProfitAndLoss_XLSXDownload(t *testing.T) {
	r, gw := newReportRig(t)
	gw.On("ProfitAndLoss", mock.Anything, mock.Anything).Return(profitLossFixture(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/profit-loss?format=xlsx", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, reportsapp.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "profit-and-loss")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err, "body must be a readable workbook")
	defer f.Close()
	title, err := f.GetCellValue("Profit and Loss", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Profit and Loss", title)
}

func TestReportHandler_RejectsUnknownFormat(t *testing.T) {
	r, gw := newReportRig(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/profit-loss?format=csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "format must be json or xlsx")
	gw.AssertNotCalled(t, "ProfitAndLoss", mock.Anything, mock.Anything)
}

func TestReportHandler_ProfitAndLoss_RejectsInvertedPeriod(t *testing.T) {
	r, gw := newReportRig(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/profit-loss?from=2026-03-31&to=2026-01-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Report period ends before it starts")
	gw.AssertNotCalled(t, "ProfitAndLoss", mock.Anything, mock.Anything)
}

func TestReportHandler_PartnerLedger_RequiresPartner(t *testing.T) {
	r, gw := newReportRig(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/partner-ledger", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gw.AssertNotCalled(t, "PartnerLedger", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportHandler_TrialBalance_PassesAsOf(t *testing.T) {
	r, gw := newReportRig(t)
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	gw.On("TrialBalance", mock.Anything, asOf).Return(&reports.TrialBalance{
		AsOf:     asOf,
		Currency: "PKR",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/trial-balance?as_of=2026-06-30", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	gw.AssertExpectations(t)
}
