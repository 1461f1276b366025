package gateway

import (
	"context"
	"net/http"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/content"
)

// SubmitContactMessage forwards a landing page contact form to the core API
func (c *Client) SubmitContactMessage(ctx context.Context, msg content.ContactMessage) error {
	return callNoContent(ctx, c, http.MethodPost, apiPrefix+"/content/contact", msg)
}
