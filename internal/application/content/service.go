// Package content serves the marketing page content and forwards contact
// form submissions. The landing payload is compiled in; only the contact
// form reaches the core API.
package content

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/content"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

// maxMessageLength keeps contact form spam from ballooning upstream requests
const maxMessageLength = 2000

// Gateway is the slice of the core API client the content endpoints use
type Gateway interface {
	SubmitContactMessage(ctx context.Context, msg content.ContactMessage) error
}

// ContactRequest is the landing page contact form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Company string `json:"company" binding:"omitempty,max=120"`
	Phone   string `json:"phone" binding:"omitempty,max=40"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Service serves landing content and forwards contact messages
type Service struct {
	gateway Gateway
	logger  *zap.Logger
}

// NewService creates a content service
func NewService(gateway Gateway, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, logger: logger}
}

// Landing returns the marketing page content
func (s *Service) Landing() content.Landing {
	return content.DefaultLanding()
}

// SubmitContact normalizes the form and forwards it to the core API
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) error {
	msg := content.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Company: strings.TrimSpace(req.Company),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if msg.Name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Name is required")
	}
	if msg.Email == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Email is required")
	}
	if msg.Message == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Message is required")
	}
	if len(msg.Message) > maxMessageLength {
		return shared.NewDomainError("VALIDATION_ERROR", "Message is too long")
	}

	if err := s.gateway.SubmitContactMessage(ctx, msg); err != nil {
		return err
	}
	s.logger.Info("Contact message forwarded",
		zap.String("email", msg.Email),
		zap.String("company", msg.Company))
	return nil
}
