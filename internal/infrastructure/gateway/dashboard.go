package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

// DashboardCounters fetches the headline figures for the dashboard home
func (c *Client) DashboardCounters(ctx context.Context) (*reports.Counters, error) {
	return call[reports.Counters](ctx, c, http.MethodGet, apiPrefix+"/dashboard/counters", nil)
}

// RecentInvoices fetches the latest invoices for the dashboard activity feed
func (c *Client) RecentInvoices(ctx context.Context, limit int) ([]billing.Invoice, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	items, err := callQuery[[]billing.Invoice](ctx, c, apiPrefix+"/dashboard/recent-invoices", q)
	if err != nil {
		return nil, err
	}
	return *items, nil
}
