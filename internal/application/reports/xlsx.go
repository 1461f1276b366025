package reports

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

// sheetDateLayout is how dates appear in exported sheets
const sheetDateLayout = "2006-01-02"

// XLSXContentType is the MIME type report handlers answer xlsx exports with
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sheetWriter fills one worksheet top to bottom. The first error sticks and
// turns the remaining writes into no-ops.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func newSheetWriter(sheet string) *sheetWriter {
	f := excelize.NewFile()
	w := &sheetWriter{f: f, sheet: sheet, row: 1}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		w.err = err
	}
	return w
}

// writeRow writes one row of values starting at column A
func (w *sheetWriter) writeRow(values ...any) {
	if w.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			w.err = err
			return
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			w.err = err
			return
		}
	}
	w.row++
}

func (w *sheetWriter) skipRow() {
	w.row++
}

func (w *sheetWriter) file() (*excelize.File, error) {
	if w.err != nil {
		return nil, fmt.Errorf("build report sheet: %w", w.err)
	}
	return w.f, nil
}

// cell converts a decimal to a native spreadsheet number so exported
// figures stay summable in the sheet.
func cell(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// ProfitAndLossWorkbook renders the income statement as a spreadsheet
func ProfitAndLossWorkbook(r *reports.ProfitLoss) (*excelize.File, error) {
	w := newSheetWriter("Profit and Loss")
	w.writeRow("Profit and Loss")
	w.writeRow("From", r.From.Format(sheetDateLayout), "To", r.To.Format(sheetDateLayout), "Currency", r.Currency)
	w.skipRow()

	w.writeRow("Income")
	w.writeRow("Account", "Label", "Amount")
	for _, line := range r.Income {
		w.writeRow(line.AccountCode, line.Label, cell(line.Amount))
	}
	w.writeRow("", "Total income", cell(r.TotalIncome))
	w.skipRow()

	w.writeRow("Expenses")
	w.writeRow("Account", "Label", "Amount")
	for _, line := range r.Expenses {
		w.writeRow(line.AccountCode, line.Label, cell(line.Amount))
	}
	w.writeRow("", "Total expenses", cell(r.TotalExpenses))
	w.skipRow()

	w.writeRow("", "Net profit", cell(r.NetProfit))
	return w.file()
}

// BalanceSheetWorkbook renders the balance sheet as a spreadsheet
func BalanceSheetWorkbook(r *reports.BalanceSheet) (*excelize.File, error) {
	w := newSheetWriter("Balance Sheet")
	w.writeRow("Balance Sheet")
	w.writeRow("As of", r.AsOf.Format(sheetDateLayout), "Currency", r.Currency)
	w.skipRow()

	sections := []struct {
		title string
		lines []reports.ReportLine
		total decimal.Decimal
	}{
		{"Assets", r.Assets, r.TotalAssets},
		{"Liabilities", r.Liabilities, r.TotalLiabilities},
		{"Equity", r.Equity, r.TotalEquity},
	}
	for _, sec := range sections {
		w.writeRow(sec.title)
		w.writeRow("Account", "Label", "Amount")
		for _, line := range sec.lines {
			w.writeRow(line.AccountCode, line.Label, cell(line.Amount))
		}
		w.writeRow("", "Total "+sec.title, cell(sec.total))
		w.skipRow()
	}
	return w.file()
}

// TrialBalanceWorkbook renders the trial balance as a spreadsheet
func TrialBalanceWorkbook(r *reports.TrialBalance) (*excelize.File, error) {
	w := newSheetWriter("Trial Balance")
	w.writeRow("Trial Balance")
	w.writeRow("As of", r.AsOf.Format(sheetDateLayout), "Currency", r.Currency)
	w.skipRow()

	w.writeRow("Account", "Name", "Debit", "Credit")
	for _, row := range r.Rows {
		w.writeRow(row.AccountCode, row.AccountName, cell(row.Debit), cell(row.Credit))
	}
	w.writeRow("", "Totals", cell(r.TotalDebit), cell(r.TotalCredit))
	return w.file()
}

// PartnerLedgerWorkbook renders a partner statement as a spreadsheet
func PartnerLedgerWorkbook(r *reports.PartnerLedger) (*excelize.File, error) {
	w := newSheetWriter("Partner Ledger")
	w.writeRow("Partner Ledger", r.PartnerName)
	w.writeRow("From", r.From.Format(sheetDateLayout), "To", r.To.Format(sheetDateLayout), "Currency", r.Currency)
	w.skipRow()

	w.writeRow("Date", "Document", "Description", "Debit", "Credit", "Balance")
	w.writeRow("", "Opening balance", "", "", "", cell(r.OpeningBalance))
	for _, e := range r.Entries {
		w.writeRow(e.Date.Format(sheetDateLayout), e.DocumentNumber, e.Description, cell(e.Debit), cell(e.Credit), cell(e.Balance))
	}
	w.writeRow("", "Closing balance", "", "", "", cell(r.ClosingBalance))
	return w.file()
}

// SalesRegisterWorkbook renders the sales register as a spreadsheet
func SalesRegisterWorkbook(r *reports.SalesRegister) (*excelize.File, error) {
	w := newSheetWriter("Sales Register")
	w.writeRow("Sales Register")
	w.writeRow("From", r.From.Format(sheetDateLayout), "To", r.To.Format(sheetDateLayout), "Currency", r.Currency)
	w.skipRow()

	w.writeRow("Invoice", "Date", "Partner", "Net", "Tax", "Total", "Status")
	for _, row := range r.Rows {
		w.writeRow(row.InvoiceNumber, row.Date.Format(sheetDateLayout), row.PartnerName, cell(row.Net), cell(row.Tax), cell(row.Total), row.Status)
	}
	w.writeRow("", "", "Totals", cell(r.Net), cell(r.Tax), cell(r.Total))
	return w.file()
}
