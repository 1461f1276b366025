// Package reports contains the application service behind the report
// screens. Every figure comes computed from the core API; this layer only
// validates the requested range and re-shapes the payload into spreadsheets
// when the screen asks for one.
package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/reports"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
)

// Gateway is the slice of the core API client the report screens use
type Gateway interface {
	ProfitAndLoss(ctx context.Context, p reports.Period) (*reports.ProfitLoss, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*reports.BalanceSheet, error)
	TrialBalance(ctx context.Context, asOf time.Time) (*reports.TrialBalance, error)
	PartnerLedger(ctx context.Context, partnerID uuid.UUID, p reports.Period) (*reports.PartnerLedger, error)
	SalesRegister(ctx context.Context, p reports.Period) (*reports.SalesRegister, error)
}

// Fixed report identifiers used as metric labels.
const (
	reportProfitLoss    = "profit_loss"
	reportBalanceSheet  = "balance_sheet"
	reportTrialBalance  = "trial_balance"
	reportPartnerLedger = "partner_ledger"
	reportSalesRegister = "sales_register"
)

// Service handles the report screens
type Service struct {
	gateway         Gateway
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewService creates a new report service
func NewService(gw Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gw, logger: logger}
}

// SetBusinessMetrics sets the business metrics recorder for this service
func (s *Service) SetBusinessMetrics(metrics *telemetry.BusinessMetrics) {
	s.businessMetrics = metrics
}

// ProfitAndLoss fetches the income statement for a period
func (s *Service) ProfitAndLoss(ctx context.Context, req PeriodRequest) (*reports.ProfitLoss, error) {
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}
	report, err := s.gateway.ProfitAndLoss(ctx, reports.Period{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}
	s.recordGenerated(ctx, reportProfitLoss)
	return report, nil
}

// BalanceSheet fetches the statement of financial position at a date
func (s *Service) BalanceSheet(ctx context.Context, req AsOfRequest) (*reports.BalanceSheet, error) {
	report, err := s.gateway.BalanceSheet(ctx, req.AsOf)
	if err != nil {
		return nil, err
	}
	s.recordGenerated(ctx, reportBalanceSheet)
	return report, nil
}

// TrialBalance fetches the trial balance at a date
func (s *Service) TrialBalance(ctx context.Context, req AsOfRequest) (*reports.TrialBalance, error) {
	report, err := s.gateway.TrialBalance(ctx, req.AsOf)
	if err != nil {
		return nil, err
	}
	s.recordGenerated(ctx, reportTrialBalance)
	return report, nil
}

// PartnerLedger fetches a partner statement for a period
func (s *Service) PartnerLedger(ctx context.Context, req PartnerLedgerRequest) (*reports.PartnerLedger, error) {
	if req.PartnerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Partner is required")
	}
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}
	report, err := s.gateway.PartnerLedger(ctx, req.PartnerID, reports.Period{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}
	s.recordGenerated(ctx, reportPartnerLedger)
	return report, nil
}

// SalesRegister fetches the sales register for a period
func (s *Service) SalesRegister(ctx context.Context, req PeriodRequest) (*reports.SalesRegister, error) {
	if err := validatePeriod(req.From, req.To); err != nil {
		return nil, err
	}
	report, err := s.gateway.SalesRegister(ctx, reports.Period{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}
	s.recordGenerated(ctx, reportSalesRegister)
	return report, nil
}

func (s *Service) recordGenerated(ctx context.Context, name string) {
	if s.businessMetrics != nil {
		s.businessMetrics.RecordReportGenerated(ctx, name)
	}
}

// validatePeriod rejects ranges that end before they start. Open-ended
// bounds are fine; the core API fills in its defaults.
func validatePeriod(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return shared.NewDomainError("VALIDATION_ERROR", "Report period ends before it starts")
	}
	return nil
}
