package reports

import "github.com/shopspring/decimal"

// Counters holds the headline figures on the dashboard home screen,
// computed by the core API
type Counters struct {
	Partners         int64           `json:"partners"`
	Products         int64           `json:"products"`
	OpenOrders       int64           `json:"open_orders"`
	DraftInvoices    int64           `json:"draft_invoices"`
	UnpaidInvoices   int64           `json:"unpaid_invoices"`
	OverdueInvoices  int64           `json:"overdue_invoices"`
	ReceivablesTotal decimal.Decimal `json:"receivables_total"`
	PayablesTotal    decimal.Decimal `json:"payables_total"`
	BaseCurrency     string          `json:"base_currency"`
}
