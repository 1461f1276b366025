package handler

import (
	"github.com/gin-gonic/gin"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
)

// NumberingHandler handles the document numbering scheme screens
type NumberingHandler struct {
	BaseHandler
	schemes *mastersapp.NumberingService
}

// NewNumberingHandler creates a new numbering scheme handler
func NewNumberingHandler(schemes *mastersapp.NumberingService) *NumberingHandler {
	return &NumberingHandler{schemes: schemes}
}

// List godoc
// @Summary      List numbering schemes
// @Tags         numbering
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        module query string false "Filter by module" Enums(invoice, voucher, manufacturing_order, partner, product)
// @Param        active query bool false "Filter by active flag"
// @Success      200 {object} dto.Response{data=[]masters.NumberingScheme,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /numbering-schemes [get]
func (h *NumberingHandler) List(c *gin.Context) {
	var req mastersapp.ListNumberingSchemesRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.schemes.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get a numbering scheme
// @Tags         numbering
// @Produce      json
// @Param        id path string true "Scheme ID"
// @Success      200 {object} dto.Response{data=masters.NumberingScheme}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /numbering-schemes/{id} [get]
func (h *NumberingHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	scheme, err := h.schemes.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, scheme)
}

// Create godoc
// @Summary      Create a numbering scheme
// @Tags         numbering
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.CreateNumberingSchemeRequest true "Scheme"
// @Success      201 {object} dto.Response{data=masters.NumberingScheme}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /numbering-schemes [post]
func (h *NumberingHandler) Create(c *gin.Context) {
	var req mastersapp.CreateNumberingSchemeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.schemes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update a numbering scheme
// @Description  Sequence counters only move forward; lowering next_number is rejected upstream
// @Tags         numbering
// @Accept       json
// @Produce      json
// @Param        id path string true "Scheme ID"
// @Param        request body mastersapp.UpdateNumberingSchemeRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=masters.NumberingScheme}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /numbering-schemes/{id} [put]
func (h *NumberingHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req mastersapp.UpdateNumberingSchemeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.schemes.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a numbering scheme
// @Tags         numbering
// @Param        id path string true "Scheme ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /numbering-schemes/{id} [delete]
func (h *NumberingHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.schemes.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Preview godoc
// @Summary      Preview a document number
// @Description  Formats the next document number for a saved scheme or for inline pattern fields, without consuming the sequence.
// @Tags         numbering
// @Accept       json
// @Produce      json
// @Param        request body mastersapp.PreviewNumberingRequest true "Scheme ID or inline pattern"
// @Success      200 {object} dto.Response{data=mastersapp.PreviewNumberingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /numbering-schemes/preview [post]
func (h *NumberingHandler) Preview(c *gin.Context) {
	var req mastersapp.PreviewNumberingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	preview, err := h.schemes.Preview(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, preview)
}
