package masters

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// NumberingGateway is the slice of the core API client the numbering screens use
type NumberingGateway interface {
	ListNumberingSchemes(ctx context.Context, f shared.Filter) (*shared.Paginated[masters.NumberingScheme], error)
	GetNumberingScheme(ctx context.Context, id uuid.UUID) (*masters.NumberingScheme, error)
	CreateNumberingScheme(ctx context.Context, req CreateNumberingSchemeRequest) (*masters.NumberingScheme, error)
	UpdateNumberingScheme(ctx context.Context, id uuid.UUID, req UpdateNumberingSchemeRequest) (*masters.NumberingScheme, error)
	DeleteNumberingScheme(ctx context.Context, id uuid.UUID) error
}

// NumberingService handles the numbering scheme screens. Sequence allocation
// is the core API's job; Preview only shows what the next number would look
// like, it never consumes one.
type NumberingService struct {
	gateway NumberingGateway
	logger  *zap.Logger
	now     func() time.Time
}

// NewNumberingService creates a new numbering scheme service
func NewNumberingService(gw NumberingGateway, logger *zap.Logger) *NumberingService {
	return &NumberingService{gateway: gw, logger: logger, now: time.Now}
}

// List fetches a page of numbering schemes
func (s *NumberingService) List(ctx context.Context, req ListNumberingSchemesRequest) (*shared.Paginated[masters.NumberingScheme], error) {
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
	if req.Module != "" {
		f = f.WithFilter("module", req.Module)
	}
	if req.Active != nil {
		f = f.WithFilter("active", boolString(*req.Active))
	}
	return s.gateway.ListNumberingSchemes(ctx, f)
}

// Get fetches a single numbering scheme
func (s *NumberingService) Get(ctx context.Context, id uuid.UUID) (*masters.NumberingScheme, error) {
	return s.gateway.GetNumberingScheme(ctx, id)
}

// Create creates a numbering scheme upstream
func (s *NumberingService) Create(ctx context.Context, req CreateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	req.Name = strings.TrimSpace(req.Name)
	created, err := s.gateway.CreateNumberingScheme(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Numbering scheme created",
		zap.String("scheme_id", created.ID.String()),
		zap.String("module", string(created.Module)))
	return created, nil
}

// Update updates a numbering scheme upstream
func (s *NumberingService) Update(ctx context.Context, id uuid.UUID, req UpdateNumberingSchemeRequest) (*masters.NumberingScheme, error) {
	updated, err := s.gateway.UpdateNumberingScheme(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Numbering scheme updated", zap.String("scheme_id", id.String()))
	return updated, nil
}

// Delete removes a numbering scheme
func (s *NumberingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteNumberingScheme(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Numbering scheme deleted", zap.String("scheme_id", id.String()))
	return nil
}

// Preview computes the document number a scheme would produce. The pattern
// comes either from a stored scheme (by ID) or from inline fields, so the
// edit form can preview unsaved changes. No sequence number is consumed.
func (s *NumberingService) Preview(ctx context.Context, req PreviewNumberingRequest) (*PreviewNumberingResponse, error) {
	at := s.now()
	if req.At != nil {
		at = *req.At
	}

	var scheme masters.NumberingScheme
	if req.SchemeID != nil {
		stored, err := s.gateway.GetNumberingScheme(ctx, *req.SchemeID)
		if err != nil {
			return nil, err
		}
		scheme = *stored
	} else {
		scheme = masters.NumberingScheme{
			Prefix:          req.Prefix,
			DateFormat:      req.DateFormat,
			SequencePadding: req.SequencePadding,
			NextNumber:      req.NextNumber,
			Suffix:          req.Suffix,
			Separator:       req.Separator,
		}
		if scheme.NextNumber == 0 {
			scheme.NextNumber = 1
		}
	}

	return &PreviewNumberingResponse{Number: scheme.Preview(at), At: at}, nil
}
