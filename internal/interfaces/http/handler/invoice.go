package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	billingapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/billing"
)

// InvoiceHandler handles sales and purchase invoice screens
type InvoiceHandler struct {
	BaseHandler
	billing *billingapp.Service
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(billing *billingapp.Service) *InvoiceHandler {
	return &InvoiceHandler{billing: billing}
}

// List godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        kind query string false "Filter by kind" Enums(sale, purchase)
// @Param        status query string false "Filter by status" Enums(draft, confirmed, partially_paid, paid, cancelled)
// @Param        partner_id query string false "Filter by partner"
// @Success      200 {object} dto.Response{data=[]billing.Invoice,meta=dto.Meta}
// @Security     SessionCookie
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var req billingapp.ListInvoicesRequest
	if !h.bindQuery(c, &req) {
		return
	}

	page, err := h.billing.ListInvoices(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(&h.BaseHandler, c, page)
}

// Get godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=billing.Invoice}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.billing.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// Create godoc
// @Summary      Create an invoice
// @Description  Totals and tax amounts come back computed by the core API
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body billingapp.CreateInvoiceRequest true "Invoice"
// @Success      201 {object} dto.Response{data=billing.Invoice}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	created, err := h.billing.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update godoc
// @Summary      Update an invoice
// @Description  Only drafts are editable; status changes ride on the status field
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Param        request body billingapp.UpdateInvoiceRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=billing.Invoice}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req billingapp.UpdateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	updated, err := h.billing.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete godoc
// @Summary      Delete an invoice
// @Description  Only drafts can be deleted; confirmed invoices are cancelled instead
// @Tags         invoices
// @Param        id path string true "Invoice ID"
// @Success      204 "deleted"
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.billing.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Print godoc
// @Summary      Print an invoice
// @Description  Renders the invoice as a PDF. With document storage enabled the response carries a download link; otherwise the PDF streams inline.
// @Tags         invoices
// @Produce      application/pdf
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=billingapp.StoredDocument}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      501 {object} dto.Response{error=dto.ErrorInfo}
// @Security     SessionCookie
// @Router       /invoices/{id}/print [post]
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.billing.PrintInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	servePrintResult(&h.BaseHandler, c, result)
}

// servePrintResult answers a print request: a stored-document pointer when
// the PDF was uploaded, the raw bytes otherwise.
func servePrintResult(h *BaseHandler, c *gin.Context, result *billingapp.PrintResult) {
	if result.Document != nil {
		h.Success(c, result.Document)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
