package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
)

type mockBillingGateway struct {
	mock.Mock
}

func (m *mockBillingGateway) ListInvoices(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Invoice], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[billing.Invoice]), args.Error(1)
}

func (m *mockBillingGateway) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *mockBillingGateway) CreateInvoice(ctx context.Context, req billingapp.CreateInvoiceRequest) (*billing.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *mockBillingGateway) UpdateInvoice(ctx context.Context, id uuid.UUID, req billingapp.UpdateInvoiceRequest) (*billing.Invoice, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *mockBillingGateway) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBillingGateway) ListVouchers(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Voucher], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[billing.Voucher]), args.Error(1)
}

func (m *mockBillingGateway) GetVoucher(ctx context.Context, id uuid.UUID) (*billing.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Voucher), args.Error(1)
}

func (m *mockBillingGateway) CreateVoucher(ctx context.Context, req billingapp.CreateVoucherRequest) (*billing.Voucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Voucher), args.Error(1)
}

func (m *mockBillingGateway) UpdateVoucher(ctx context.Context, id uuid.UUID, req billingapp.UpdateVoucherRequest) (*billing.Voucher, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Voucher), args.Error(1)
}

func (m *mockBillingGateway) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// newInvoiceRig wires the invoice handler over a billing service with
// printing disabled, which is how the server runs without chromedp.
func newInvoiceRig(t *testing.T) (*gin.Engine, *mockBillingGateway) {
	t.Helper()

	gw := &mockBillingGateway{}
	svc := billingapp.NewService(gw, nil, nil, nil, config.PrintingConfig{Enabled: false}, zap.NewNop())
	h := NewInvoiceHandler(svc)

	r := gin.New()
	r.GET("/api/v1/invoices", h.List)
	r.GET("/api/v1/invoices/:id", h.Get)
	r.POST("/api/v1/invoices", h.Create)
	r.DELETE("/api/v1/invoices/:id", h.Delete)
	r.POST("/api/v1/invoices/:id/print", h.Print)
	return r, gw
}

func TestInvoiceHandler_Print_DisabledReturns501(t *testing.T) {
	r, gw := newInvoiceRig(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+uuid.NewString()+"/print", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "PRINTING_DISABLED")
	gw.AssertNotCalled(t, "GetInvoice", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Get_NotFoundPassesThrough(t *testing.T) {
	r, gw := newInvoiceRig(t)
	id := uuid.New()
	gw.On("GetInvoice", mock.Anything, id).Return(nil, &gateway.APIError{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    "invoice not found",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestInvoiceHandler_Create_RequiresLines(t *testing.T) {
	r, gw := newInvoiceRig(t)

	body, _ := json.Marshal(gin.H{
		"kind":       "sale",
		"partner_id": uuid.NewString(),
		"date":       "2026-02-10T00:00:00Z",
		"lines":      []any{},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	gw.AssertNotCalled(t, "CreateInvoice", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Delete_ConfirmedInvoiceIsRefused(t *testing.T) {
	r, gw := newInvoiceRig(t)
	id := uuid.New()
	gw.On("DeleteInvoice", mock.Anything, id).Return(&gateway.APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "INVALID_STATE",
		Message:    "only draft invoices can be deleted",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/invoices/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestServePrintResult_InlinePDF(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	pdf := []byte("%PDF-1.7 fake body")
	servePrintResult(h, c, &billingapp.PrintResult{PDF: pdf, FileName: "INV-2026-00042.pdf"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `inline`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "INV-2026-00042.pdf")
	assert.Equal(t, pdf, w.Body.Bytes())
}

func TestServePrintResult_StoredDocument(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	servePrintResult(h, c, &billingapp.PrintResult{
		FileName: "INV-2026-00042.pdf",
		Document: &billingapp.StoredDocument{
			Key:  "invoices/2026/02/INV-2026-00042.pdf",
			URL:  "https://docs.misoft.pk/invoices/2026/02/INV-2026-00042.pdf?sig=abc",
			Size: 48213,
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			DocumentID string `json:"document_id"`
			URL        string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "invoices/2026/02/INV-2026-00042.pdf", body.Data.DocumentID)
	assert.Contains(t, body.Data.URL, "https://docs.misoft.pk/")
}
