package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/partner"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// Gateway is the slice of the core API client the partner screens use
type Gateway interface {
	ListPartners(ctx context.Context, f shared.Filter) (*shared.Paginated[partner.Partner], error)
	GetPartner(ctx context.Context, id uuid.UUID) (*partner.Partner, error)
	CreatePartner(ctx context.Context, req CreatePartnerRequest) (*partner.Partner, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*partner.Partner, error)
}

// ServiceConfig contains configuration for the partner service
type ServiceConfig struct {
	// PhoneRegion is the region used to parse phone numbers entered
	// without an international prefix.
	PhoneRegion string
}

// DefaultServiceConfig returns default configuration
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{PhoneRegion: "US"}
}

// Service handles partner (customer/vendor) screens. Writes are normalized
// here before the core API sees them; the core API stays the authority on
// uniqueness and credit rules.
type Service struct {
	gateway Gateway
	config  ServiceConfig
	logger  *zap.Logger
}

// NewService creates a new partner service
func NewService(gw Gateway, config ServiceConfig, logger *zap.Logger) *Service {
	if config.PhoneRegion == "" {
		config.PhoneRegion = DefaultServiceConfig().PhoneRegion
	}
	return &Service{gateway: gw, config: config, logger: logger}
}

// List fetches a page of partners
func (s *Service) List(ctx context.Context, req ListPartnersRequest) (*shared.Paginated[partner.Partner], error) {
	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		f.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		f.OrderDir = req.OrderDir
	}
	f.Search = req.Search
	if req.Kind != "" {
		f = f.WithFilter("kind", req.Kind)
	}
	return s.gateway.ListPartners(ctx, f)
}

// Get fetches a single partner
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	return s.gateway.GetPartner(ctx, id)
}

// Create normalizes the request and creates the partner upstream
func (s *Service) Create(ctx context.Context, req CreatePartnerRequest) (*partner.Partner, error) {
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Name = strings.TrimSpace(req.Name)
	req.Currency = strings.ToUpper(req.Currency)

	phone, err := s.normalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	req.Phone = phone

	created, err := s.gateway.CreatePartner(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Partner created",
		zap.String("partner_id", created.ID.String()),
		zap.String("code", created.Code))
	return created, nil
}

// Update normalizes the changed fields and updates the partner upstream
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*partner.Partner, error) {
	if req.Phone != nil {
		phone, err := s.normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		req.Phone = &phone
	}
	if req.Currency != nil {
		upper := strings.ToUpper(*req.Currency)
		req.Currency = &upper
	}
	updated, err := s.gateway.UpdatePartner(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Partner updated", zap.String("partner_id", id.String()))
	return updated, nil
}

// Archive deactivates a partner. Partners are never deleted: documents keep
// referring to them, so the core API only flips the active flag.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	active := false
	updated, err := s.gateway.UpdatePartner(ctx, id, UpdatePartnerRequest{Active: &active})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Partner archived", zap.String("partner_id", id.String()))
	return updated, nil
}

// normalizePhone parses a phone number and reformats it as E.164. Empty
// input passes through: phone is optional on partners.
func (s *Service) normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := libphonenumber.Parse(raw, s.config.PhoneRegion)
	if err != nil {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Invalid phone number")
	}
	if !libphonenumber.IsValidNumber(parsed) {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Phone number is not valid for its region")
	}
	return libphonenumber.Format(parsed, libphonenumber.E164), nil
}
