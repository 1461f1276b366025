package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProfitAndLossWorkbook(t *testing.T) {
	r := &reports.ProfitLoss{
		From:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Income: []reports.ReportLine{
			{AccountCode: "4000", Label: "Sales", Amount: d("125000.50")},
			{AccountCode: "4100", Label: "Service revenue", Amount: d("8000")},
		},
		Expenses: []reports.ReportLine{
			{AccountCode: "5000", Label: "Cost of goods sold", Amount: d("74000")},
		},
		TotalIncome:   d("133000.50"),
		TotalExpenses: d("74000"),
		NetProfit:     d("59000.50"),
	}

	f, err := ProfitAndLossWorkbook(r)
	require.NoError(t, err)

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Profit and Loss"}, sheets)

	title, err := f.GetCellValue("Profit and Loss", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Profit and Loss", title)

	// Income section starts after the title, the period row and a blank row.
	header, err := f.GetCellValue("Profit and Loss", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Income", header)

	firstIncome, err := f.GetCellValue("Profit and Loss", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Sales", firstIncome)

	amount, err := f.GetCellValue("Profit and Loss", "C6")
	require.NoError(t, err)
	assert.Equal(t, "125000.5", amount)
}

func TestTrialBalanceWorkbook_TotalsRow(t *testing.T) {
	r := &reports.TrialBalance{
		AsOf:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Rows: []reports.TrialBalanceRow{
			{AccountCode: "1000", AccountName: "Cash", Debit: d("5000"), Credit: d("0")},
			{AccountCode: "3000", AccountName: "Capital", Debit: d("0"), Credit: d("5000")},
		},
		TotalDebit:  d("5000"),
		TotalCredit: d("5000"),
	}

	f, err := TrialBalanceWorkbook(r)
	require.NoError(t, err)

	// Header row, two data rows, then totals.
	label, err := f.GetCellValue("Trial Balance", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Totals", label)

	debit, err := f.GetCellValue("Trial Balance", "C7")
	require.NoError(t, err)
	assert.Equal(t, "5000", debit)
}

func TestSalesRegisterWorkbook_RowsAndTotals(t *testing.T) {
	r := &reports.SalesRegister{
		From:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Rows: []reports.SalesRegisterRow{
			{InvoiceNumber: "INV-2026-0001", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), PartnerName: "Acme", Net: d("100"), Tax: d("18"), Total: d("118"), Status: "paid"},
		},
		Net:   d("100"),
		Tax:   d("18"),
		Total: d("118"),
	}

	f, err := SalesRegisterWorkbook(r)
	require.NoError(t, err)

	num, err := f.GetCellValue("Sales Register", "A5")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", num)

	total, err := f.GetCellValue("Sales Register", "F6")
	require.NoError(t, err)
	assert.Equal(t, "118", total)
}

func TestPartnerLedgerWorkbook_OpeningAndClosing(t *testing.T) {
	r := &reports.PartnerLedger{
		PartnerName:    "Acme Corp",
		From:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:             time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency:       "USD",
		OpeningBalance: d("250"),
		Entries: []reports.LedgerEntry{
			{Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), DocumentNumber: "INV-2026-0009", Debit: d("118"), Credit: d("0"), Balance: d("368")},
		},
		ClosingBalance: d("368"),
	}

	f, err := PartnerLedgerWorkbook(r)
	require.NoError(t, err)

	opening, err := f.GetCellValue("Partner Ledger", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Opening balance", opening)

	closing, err := f.GetCellValue("Partner Ledger", "F7")
	require.NoError(t, err)
	assert.Equal(t, "368", closing)
}

func TestBalanceSheetWorkbook_Sections(t *testing.T) {
	r := &reports.BalanceSheet{
		AsOf:     time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Assets: []reports.ReportLine{
			{AccountCode: "1000", Label: "Cash", Amount: d("5000")},
		},
		Liabilities:      []reports.ReportLine{},
		Equity:           []reports.ReportLine{{AccountCode: "3000", Label: "Capital", Amount: d("5000")}},
		TotalAssets:      d("5000"),
		TotalLiabilities: d("0"),
		TotalEquity:      d("5000"),
	}

	f, err := BalanceSheetWorkbook(r)
	require.NoError(t, err)

	assets, err := f.GetCellValue("Balance Sheet", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Assets", assets)

	totalAssets, err := f.GetCellValue("Balance Sheet", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Total Assets", totalAssets)
}
