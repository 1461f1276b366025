package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLanding_RendersMarketingPage(t *testing.T) {
	renderer, err := NewRenderer(zap.NewNop())
	require.NoError(t, err)
	renderer.now = func() time.Time {
		return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	}

	r := gin.New()
	r.GET("/", renderer.Landing)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "MISOFT", "nav logo renders uppercase")
	assert.Contains(t, body, "IFRS-compliant accounting")
	assert.Contains(t, body, "Start free trial")
	assert.Contains(t, body, "Double-entry ledger")
	assert.Contains(t, body, "12,999")
	assert.Contains(t, body, "Crescent Textiles")
	assert.Contains(t, body, "&copy; 2026 MISoft")
	assert.Contains(t, body, `action="/api/v1/content/contact"`)
}

func TestNewRenderer_ParsesEmbeddedTemplates(t *testing.T) {
	renderer, err := NewRenderer(zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, renderer.templates.Lookup("landing.html"))
}

func TestTemplateHelpers(t *testing.T) {
	assert.Equal(t, "Manufacturing Orders", titleCase("manufacturing orders"))
	assert.Equal(t, "Feb 10, 2026", formatDate(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1,234,567.50", formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-42.00", formatMoney(decimal.NewFromInt(-42)))
}
