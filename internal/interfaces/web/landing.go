// Package web renders the server-side marketing pages. The dashboard itself
// is an API client; only the public landing page is rendered here.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer serves the embedded marketing templates
type Renderer struct {
	templates *template.Template
	logger    *zap.Logger
	now       func() time.Time
}

// NewRenderer parses the embedded page templates
func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	tmpl, err := template.New("web").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse web templates: %w", err)
	}
	return &Renderer{templates: tmpl, logger: logger, now: time.Now}, nil
}

// landingView wraps the landing content with page-level extras
type landingView struct {
	content.Landing
	Year int
}

// Landing handles GET /
func (r *Renderer) Landing(c *gin.Context) {
	view := landingView{
		Landing: content.DefaultLanding(),
		Year:    r.now().Year(),
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "landing.html", view); err != nil {
		r.logger.Error("Landing page rendering failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"title": titleCase,
		"date":  formatDate,
		"money": formatMoney,
	}
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatMoney renders a decimal with two places and thousand separators
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.Split(d.StringFixed(2), ".")
	intPart := parts[0]

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return sign + b.String() + "." + parts[1]
}
