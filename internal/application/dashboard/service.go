// Package dashboard composes the dashboard home screen. Counters and the
// recent activity feed come from separate core API endpoints, so the summary
// fans the calls out in parallel and fails fast on the first error.
package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
)

// defaultRecentLimit is how many invoices the activity feed shows unless the
// screen asks for more
const defaultRecentLimit = 5

// maxRecentLimit caps the activity feed size
const maxRecentLimit = 50

// Gateway is the slice of the core API client the dashboard needs.
type Gateway interface {
	DashboardCounters(ctx context.Context) (*reports.Counters, error)
	RecentInvoices(ctx context.Context, limit int) ([]billing.Invoice, error)
}

// SummaryRequest tunes the dashboard summary
type SummaryRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// SummaryResponse is the dashboard home payload
type SummaryResponse struct {
	Counters       reports.Counters  `json:"counters"`
	RecentInvoices []billing.Invoice `json:"recent_invoices"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// Service assembles the dashboard summary
type Service struct {
	gateway Gateway
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a dashboard service
func NewService(gateway Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, logger: logger, now: time.Now}
}

// Summary fetches the counters and the recent invoice feed in parallel and
// composes the dashboard home payload.
func (s *Service) Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	var (
		counters *reports.Counters
		recent   []billing.Invoice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.gateway.DashboardCounters(gctx)
		if err != nil {
			return err
		}
		counters = c
		return nil
	})
	g.Go(func() error {
		inv, err := s.gateway.RecentInvoices(gctx, limit)
		if err != nil {
			return err
		}
		recent = inv
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []billing.Invoice{}
	}
	return &SummaryResponse{
		Counters:       *counters,
		RecentInvoices: recent,
		GeneratedAt:    s.now(),
	}, nil
}
