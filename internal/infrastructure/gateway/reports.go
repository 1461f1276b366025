package gateway

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

// dateParam is the wire format for report date parameters
const dateParam = "2006-01-02"

func periodQuery(p reports.Period) url.Values {
	q := url.Values{}
	if !p.From.IsZero() {
		q.Set("from", p.From.Format(dateParam))
	}
	if !p.To.IsZero() {
		q.Set("to", p.To.Format(dateParam))
	}
	return q
}

// ProfitAndLoss fetches the income statement for a period
func (c *Client) ProfitAndLoss(ctx context.Context, p reports.Period) (*reports.ProfitLoss, error) {
	return callQuery[reports.ProfitLoss](ctx, c, apiPrefix+"/reports/profit-loss", periodQuery(p))
}

// BalanceSheet fetches the statement of financial position at a date
func (c *Client) BalanceSheet(ctx context.Context, asOf time.Time) (*reports.BalanceSheet, error) {
	q := url.Values{}
	if !asOf.IsZero() {
		q.Set("as_of", asOf.Format(dateParam))
	}
	return callQuery[reports.BalanceSheet](ctx, c, apiPrefix+"/reports/balance-sheet", q)
}

// TrialBalance fetches the trial balance at a date
func (c *Client) TrialBalance(ctx context.Context, asOf time.Time) (*reports.TrialBalance, error) {
	q := url.Values{}
	if !asOf.IsZero() {
		q.Set("as_of", asOf.Format(dateParam))
	}
	return callQuery[reports.TrialBalance](ctx, c, apiPrefix+"/reports/trial-balance", q)
}

// PartnerLedger fetches a partner statement for a period
func (c *Client) PartnerLedger(ctx context.Context, partnerID uuid.UUID, p reports.Period) (*reports.PartnerLedger, error) {
	q := periodQuery(p)
	q.Set("partner_id", partnerID.String())
	return callQuery[reports.PartnerLedger](ctx, c, apiPrefix+"/reports/partner-ledger", q)
}

// SalesRegister fetches the sales register for a period
func (c *Client) SalesRegister(ctx context.Context, p reports.Period) (*reports.SalesRegister, error) {
	return callQuery[reports.SalesRegister](ctx, c, apiPrefix+"/reports/sales-register", periodQuery(p))
}
