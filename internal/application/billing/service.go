package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/billing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	infra "github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/printing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/telemetry"
)

// Gateway is the slice of the core API client the billing screens use
type Gateway interface {
	ListInvoices(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Invoice], error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*billing.Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*billing.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	ListVouchers(ctx context.Context, f shared.Filter) (*shared.Paginated[billing.Voucher], error)
	GetVoucher(ctx context.Context, id uuid.UUID) (*billing.Voucher, error)
	CreateVoucher(ctx context.Context, req CreateVoucherRequest) (*billing.Voucher, error)
	UpdateVoucher(ctx context.Context, id uuid.UUID, req UpdateVoucherRequest) (*billing.Voucher, error)
	DeleteVoucher(ctx context.Context, id uuid.UUID) error
}

// DocumentStore persists rendered PDFs and hands out download URLs.
// Implemented by the S3 adapter and the filesystem stub.
type DocumentStore interface {
	Store(ctx context.Context, key string, data []byte, contentType string) (*StoredDocument, error)
}

// Service handles invoice and voucher screens plus their print views.
// Renderer and store may be nil: printing is config-gated.
type Service struct {
	gateway         Gateway
	renderer        infra.PDFRenderer
	templates       *infra.DocumentTemplates
	store           DocumentStore
	printCfg        config.PrintingConfig
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewService creates a new billing service
func NewService(
	gw Gateway,
	renderer infra.PDFRenderer,
	templates *infra.DocumentTemplates,
	store DocumentStore,
	printCfg config.PrintingConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		gateway:   gw,
		renderer:  renderer,
		templates: templates,
		store:     store,
		printCfg:  printCfg,
		logger:    logger,
	}
}

// SetBusinessMetrics sets the business metrics recorder for this service
func (s *Service) SetBusinessMetrics(metrics *telemetry.BusinessMetrics) {
	s.businessMetrics = metrics
}

// ListInvoices fetches a page of invoices
func (s *Service) ListInvoices(ctx context.Context, req ListInvoicesRequest) (*shared.Paginated[billing.Invoice], error) {
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
	if req.Status != "" {
		f = f.WithFilter("status", req.Status)
	}
	if req.PartnerID != nil {
		f = f.WithFilter("partner_id", req.PartnerID.String())
	}
	return s.gateway.ListInvoices(ctx, f)
}

// GetInvoice fetches a single invoice with its lines
func (s *Service) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return s.gateway.GetInvoice(ctx, id)
}

// CreateInvoice validates the form shape and creates the invoice upstream.
// Numbering, totals and tax math are the core API's work.
func (s *Service) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*billing.Invoice, error) {
	if req.DueDate != nil && req.DueDate.Before(req.Date) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Due date must not be before the invoice date")
	}
	if err := validateInvoiceLines(req.Lines); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateInvoice(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoice created",
		zap.String("invoice_id", created.ID.String()),
		zap.String("number", created.Number),
		zap.String("kind", string(created.Kind)))
	return created, nil
}

// UpdateInvoice validates the changed fields and updates the invoice upstream
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*billing.Invoice, error) {
	if req.Date != nil && req.DueDate != nil && req.DueDate.Before(*req.Date) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Due date must not be before the invoice date")
	}
	if len(req.Lines) > 0 {
		if err := validateInvoiceLines(req.Lines); err != nil {
			return nil, err
		}
	}

	updated, err := s.gateway.UpdateInvoice(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invoice updated", zap.String("invoice_id", id.String()))
	return updated, nil
}

// DeleteInvoice removes a draft invoice. Confirmed invoices refuse upstream.
func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteInvoice(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}

// ListVouchers fetches a page of vouchers
func (s *Service) ListVouchers(ctx context.Context, req ListVouchersRequest) (*shared.Paginated[billing.Voucher], error) {
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
	if req.Status != "" {
		f = f.WithFilter("status", req.Status)
	}
	if req.PartnerID != nil {
		f = f.WithFilter("partner_id", req.PartnerID.String())
	}
	return s.gateway.ListVouchers(ctx, f)
}

// GetVoucher fetches a single voucher with its lines
func (s *Service) GetVoucher(ctx context.Context, id uuid.UUID) (*billing.Voucher, error) {
	return s.gateway.GetVoucher(ctx, id)
}

// CreateVoucher validates the legs' shape and creates the voucher upstream.
// Debit/credit balance is the core API's verdict at posting time.
func (s *Service) CreateVoucher(ctx context.Context, req CreateVoucherRequest) (*billing.Voucher, error) {
	if err := validateVoucherLines(req.Lines); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateVoucher(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Voucher created",
		zap.String("voucher_id", created.ID.String()),
		zap.String("number", created.Number),
		zap.String("kind", string(created.Kind)))
	return created, nil
}

// UpdateVoucher validates the changed fields and updates the voucher upstream
func (s *Service) UpdateVoucher(ctx context.Context, id uuid.UUID, req UpdateVoucherRequest) (*billing.Voucher, error) {
	if len(req.Lines) > 0 {
		if err := validateVoucherLines(req.Lines); err != nil {
			return nil, err
		}
	}

	updated, err := s.gateway.UpdateVoucher(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Voucher updated", zap.String("voucher_id", id.String()))
	return updated, nil
}

// DeleteVoucher removes a draft voucher
func (s *Service) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	if err := s.gateway.DeleteVoucher(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Voucher deleted", zap.String("voucher_id", id.String()))
	return nil
}

// PrintInvoice renders the invoice's print view to PDF
func (s *Service) PrintInvoice(ctx context.Context, id uuid.UUID) (*PrintResult, error) {
	if !s.printingAvailable() {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "Document printing is not enabled on this server")
	}

	ctx, span := telemetry.StartSpan(ctx, "invoice", "print",
		telemetry.SpanDocumentID.String(id.String()))
	defer span.End()

	inv, err := s.gateway.GetInvoice(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(telemetry.SpanDocumentNumber.String(inv.Number))

	html, err := s.templates.InvoiceHTML(inv)
	if err != nil {
		s.logger.Error("Invoice template rendering failed", zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to render invoice")
	}

	key := fmt.Sprintf("invoices/%s/%s.pdf", inv.Date.Format("2006/01"), inv.Number)
	result, err := s.renderDocument(ctx, html, fmt.Sprintf("Invoice %s", inv.Number), key, inv.Number)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordDocumentPrinted(ctx, telemetry.DocumentInvoice)
	}
	return result, nil
}

// PrintVoucher renders the voucher's print view to PDF
func (s *Service) PrintVoucher(ctx context.Context, id uuid.UUID) (*PrintResult, error) {
	if !s.printingAvailable() {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "Document printing is not enabled on this server")
	}

	ctx, span := telemetry.StartSpan(ctx, "voucher", "print",
		telemetry.SpanDocumentID.String(id.String()))
	defer span.End()

	voucher, err := s.gateway.GetVoucher(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(telemetry.SpanDocumentNumber.String(voucher.Number))

	html, err := s.templates.VoucherHTML(voucher)
	if err != nil {
		s.logger.Error("Voucher template rendering failed", zap.Error(err))
		telemetry.RecordError(span, err)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to render voucher")
	}

	key := fmt.Sprintf("vouchers/%s/%s.pdf", voucher.Date.Format("2006/01"), voucher.Number)
	result, err := s.renderDocument(ctx, html, fmt.Sprintf("Voucher %s", voucher.Number), key, voucher.Number)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordDocumentPrinted(ctx, telemetry.DocumentVoucher)
	}
	return result, nil
}

func (s *Service) printingAvailable() bool {
	return s.printCfg.Enabled && s.renderer != nil && s.templates != nil
}

// renderDocument runs the PDF render and either uploads the result or hands
// it back for inline streaming.
func (s *Service) renderDocument(ctx context.Context, html, title, key, number string) (*PrintResult, error) {
	result, err := s.renderer.Render(ctx, &infra.RenderRequest{
		HTML:        html,
		Title:       title,
		PaperWidth:  s.printCfg.PaperWidth,
		PaperHeight: s.printCfg.PaperHeight,
		Timeout:     s.printCfg.RenderTimeout,
	})
	if err != nil {
		s.logger.Error("PDF rendering failed", zap.Error(err), zap.String("document", number))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "PDF generation failed")
	}

	if s.printCfg.UploadEnabled && s.store != nil {
		doc, err := s.store.Store(ctx, key, result.PDFData, "application/pdf")
		if err != nil {
			s.logger.Error("Document upload failed", zap.Error(err), zap.String("key", key))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to store rendered document")
		}
		telemetry.AddEvent(ctx, "document_stored",
			telemetry.SpanStorageKey.String(doc.Key),
			telemetry.SpanSizeBytes.Int64(doc.Size),
		)
		s.logger.Info("Document rendered and stored",
			zap.String("key", doc.Key),
			zap.Int64("size", doc.Size),
			zap.Int("pages", result.PageCount))
		return &PrintResult{Document: doc}, nil
	}

	s.logger.Info("Document rendered",
		zap.String("document", number),
		zap.Int("bytes", len(result.PDFData)),
		zap.Int("pages", result.PageCount))
	return &PrintResult{PDF: result.PDFData, FileName: number + ".pdf"}, nil
}

func validateInvoiceLines(lines []InvoiceLineRequest) error {
	for i, line := range lines {
		if line.Quantity != nil && !line.Quantity.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: quantity must be greater than zero", i+1))
		}
		if line.UnitPrice != nil && line.UnitPrice.IsNegative() {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: unit price must not be negative", i+1))
		}
	}
	return nil
}

func validateVoucherLines(lines []VoucherLineRequest) error {
	for i, line := range lines {
		debit := line.Debit != nil && line.Debit.IsPositive()
		credit := line.Credit != nil && line.Credit.IsPositive()
		if line.Debit != nil && line.Debit.IsNegative() {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: debit must not be negative", i+1))
		}
		if line.Credit != nil && line.Credit.IsNegative() {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: credit must not be negative", i+1))
		}
		if debit && credit {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: a line carries either a debit or a credit, not both", i+1))
		}
		if !debit && !credit {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Line %d: a line needs a debit or a credit amount", i+1))
		}
	}
	return nil
}
