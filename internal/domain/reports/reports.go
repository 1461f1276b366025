// Package reports holds the report payloads the core API computes. The
// dashboard renders them and optionally re-shapes them into spreadsheets;
// it never derives a figure itself.
package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportLine is one labelled amount inside a financial statement section
type ReportLine struct {
	AccountCode string          `json:"account_code,omitempty"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLoss represents the income statement for a period
type ProfitLoss struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Currency      string          `json:"currency"`
	Income        []ReportLine    `json:"income"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// BalanceSheet represents the statement of financial position at a date
type BalanceSheet struct {
	AsOf             time.Time       `json:"as_of"`
	Currency         string          `json:"currency"`
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// TrialBalanceRow is one account line of the trial balance
type TrialBalanceRow struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance represents the trial balance at a date
type TrialBalance struct {
	AsOf        time.Time         `json:"as_of"`
	Currency    string            `json:"currency"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
}

// LedgerEntry is one movement on a partner's ledger
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	DocumentNumber string          `json:"document_number"`
	Description    string          `json:"description,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"`
}

// PartnerLedger represents a partner statement for a period
type PartnerLedger struct {
	PartnerID      uuid.UUID       `json:"partner_id"`
	PartnerName    string          `json:"partner_name"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Entries        []LedgerEntry   `json:"entries"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// SalesRegisterRow is one invoice line of the sales register
type SalesRegisterRow struct {
	InvoiceNumber string          `json:"invoice_number"`
	Date          time.Time       `json:"date"`
	PartnerName   string          `json:"partner_name"`
	Net           decimal.Decimal `json:"net"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
}

// SalesRegister represents the sales register for a period
type SalesRegister struct {
	From     time.Time          `json:"from"`
	To       time.Time          `json:"to"`
	Currency string             `json:"currency"`
	Rows     []SalesRegisterRow `json:"rows"`
	Net      decimal.Decimal    `json:"net"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
}

// Period is the date range filter common to report screens
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}
