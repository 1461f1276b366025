package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/content"
)

// ContentHandler serves the public marketing endpoints. These sit outside
// the session guard; the contact form is rate limited instead.
type ContentHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *contentapp.Service) *ContentHandler {
	return &ContentHandler{content: content}
}

// Landing godoc
// @Summary      Landing page content
// @Description  Hero copy, feature grid, module tour, plans and testimonials for the marketing page.
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=content.Landing}
// @Router       /content/landing [get]
func (h *ContentHandler) Landing(c *gin.Context) {
	h.Success(c, h.content.Landing())
}

// Contact godoc
// @Summary      Submit the contact form
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        request body contentapp.ContactRequest true "Contact message"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /content/contact [post]
func (h *ContentHandler) Contact(c *gin.Context) {
	var req contentapp.ContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.content.SubmitContact(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"received": true})
}
