package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
)

//go:embed templates/*.html
var templateFS embed.FS

// DocumentTemplates renders the built-in print views for invoices and
// vouchers. Templates are embedded; there is no template management here.
// Print layout customization lives in the core system.
type DocumentTemplates struct {
	templates *template.Template
	now       func() time.Time
}

// NewDocumentTemplates parses the embedded templates
func NewDocumentTemplates() (*DocumentTemplates, error) {
	tmpl, err := template.New("documents").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse document templates: %w", err)
	}
	return &DocumentTemplates{templates: tmpl, now: time.Now}, nil
}

type invoiceView struct {
	Title        string
	Heading      string
	PartnerLabel string
	Invoice      *billing.Invoice
	GeneratedAt  time.Time
}

type voucherView struct {
	Title       string
	Heading     string
	Voucher     *billing.Voucher
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	GeneratedAt time.Time
}

// InvoiceHTML renders the invoice print view
func (t *DocumentTemplates) InvoiceHTML(inv *billing.Invoice) (string, error) {
	view := invoiceView{
		Title:        fmt.Sprintf("Invoice %s", inv.Number),
		Heading:      "Sales Invoice",
		PartnerLabel: "Bill To",
		Invoice:      inv,
		GeneratedAt:  t.now(),
	}
	if inv.Kind == billing.InvoiceKindPurchase {
		view.Heading = "Purchase Invoice"
		view.PartnerLabel = "Vendor"
	}
	return t.render("invoice.html", view)
}

// VoucherHTML renders the voucher print view
func (t *DocumentTemplates) VoucherHTML(v *billing.Voucher) (string, error) {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, line := range v.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}

	view := voucherView{
		Title:       fmt.Sprintf("Voucher %s", v.Number),
		Heading:     voucherHeading(v.Kind),
		Voucher:     v,
		DebitTotal:  debit,
		CreditTotal: credit,
		GeneratedAt: t.now(),
	}
	return t.render("voucher.html", view)
}

func (t *DocumentTemplates) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func voucherHeading(kind billing.VoucherKind) string {
	switch kind {
	case billing.VoucherKindPayment:
		return "Payment Voucher"
	case billing.VoucherKindReceipt:
		return "Receipt Voucher"
	default:
		return "Journal Voucher"
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":       formatMoney,
		"qty":         formatQuantity,
		"date":        formatDate,
		"datetime":    formatDateTime,
		"statusLabel": statusLabel,
		"upper":       strings.ToUpper,
	}
}

// formatMoney renders a decimal with two places and thousand separators.
// Example: 1234.5 -> "1,234.50"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.Split(d.StringFixed(2), ".")
	intPart := parts[0]
	decPart := "00"
	if len(parts) > 1 {
		decPart = parts[1]
	}

	var result strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}

	return sign + result.String() + "." + decPart
}

// formatQuantity renders a decimal without trailing zeros
func formatQuantity(d decimal.Decimal) string {
	return d.String()
}

func formatDate(v any) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(v any) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	default:
		return time.Time{}
	}
}

// statusLabel turns a machine status into its screen label.
// Example: "partially_paid" -> "Partially Paid"
func statusLabel(v any) string {
	s := fmt.Sprintf("%v", v)
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
